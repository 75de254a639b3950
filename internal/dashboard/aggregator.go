package dashboard

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"hackhub/admin-api/internal/store"
	"hackhub/admin-api/models"
)

// Stats holds the per-status record counts and their derived total.
type Stats struct {
	Upcoming int64 `json:"upcoming"`
	Ongoing  int64 `json:"ongoing"`
	Total    int64 `json:"total"`
}

// Aggregator derives dashboard totals from count-only queries.
type Aggregator struct {
	gateway store.Gateway
	log     *logrus.Logger
}

// NewAggregator returns an Aggregator over the given gateway.
func NewAggregator(gateway store.Gateway, log *logrus.Logger) *Aggregator {
	return &Aggregator{gateway: gateway, log: log}
}

// LoadCounts runs the upcoming and ongoing count queries concurrently and
// joins them before deriving the total. A failed query is logged and counted
// as zero; the aggregation always completes with whatever is available, so
// Total == Upcoming + Ongoing holds regardless of failures. Swallowing the
// per-query error is deliberate: the dashboard prefers degraded numbers over
// a blocked page.
func (a *Aggregator) LoadCounts() Stats {
	var stats Stats

	var g errgroup.Group
	g.Go(func() error {
		stats.Upcoming = a.count(models.StatusUpcoming)
		return nil
	})
	g.Go(func() error {
		stats.Ongoing = a.count(models.StatusOngoing)
		return nil
	})
	g.Wait()

	stats.Total = stats.Upcoming + stats.Ongoing
	return stats
}

func (a *Aggregator) count(status string) int64 {
	count, err := a.gateway.CountByStatus(status)
	if err != nil {
		a.log.WithError(err).WithField("status", status).Error("Count query failed, defaulting to 0")
		return 0
	}
	return count
}
