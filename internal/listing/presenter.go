package listing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"hackhub/admin-api/internal/store"
	"hackhub/admin-api/models"
)

// descriptionPlaceholder is shown for records without a description.
const descriptionPlaceholder = "No description"

// Confirmer answers the destructive-action confirmation prompt for a delete.
type Confirmer interface {
	ConfirmDelete(id int64) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(id int64) bool

func (f ConfirmerFunc) ConfirmDelete(id int64) bool { return f(id) }

// Summary is the list projection of a record: title, description with a
// placeholder fallback, a combined date range, and the mode when set.
// Registration link and time are only reachable through the edit form.
type Summary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DateRange   string `json:"date_range"`
	Mode        string `json:"mode,omitempty"`
}

// Snapshot is the immutable view of the presenter published to subscribers.
// When Items is empty, Placeholder carries the single empty-state message to
// render instead of an empty list.
type Snapshot struct {
	Status      string
	Items       []models.Hackathon
	Loading     bool
	Placeholder string
}

// Presenter owns the in-memory list of records for one status view. A failed
// refresh keeps the previous list visible; a failed delete leaves the row in
// place. Not safe for concurrent use; one presenter drives one view.
type Presenter struct {
	gateway store.Gateway
	log     *logrus.Logger

	status  string
	items   []models.Hackathon
	loading bool
	subs    []func(Snapshot)
}

// NewPresenter returns a presenter for the admin view with the given status.
func NewPresenter(gateway store.Gateway, log *logrus.Logger, status string) *Presenter {
	return &Presenter{gateway: gateway, log: log, status: status, loading: true}
}

// Subscribe registers fn to receive a snapshot after every state change.
func (p *Presenter) Subscribe(fn func(Snapshot)) {
	p.subs = append(p.subs, fn)
}

// Snapshot returns the current list state.
func (p *Presenter) Snapshot() Snapshot {
	snap := Snapshot{
		Status:  p.status,
		Items:   append([]models.Hackathon(nil), p.items...),
		Loading: p.loading,
	}
	if len(p.items) == 0 {
		snap.Placeholder = fmt.Sprintf("No %s hackathons. Add one to get started!", p.status)
	}
	return snap
}

func (p *Presenter) notify() {
	snap := p.Snapshot()
	for _, fn := range p.subs {
		fn(snap)
	}
}

// Refresh replaces the list wholesale with the current remote state. On
// failure the previous list stays displayed; the loading flag goes false
// either way.
func (p *Presenter) Refresh() error {
	defer func() {
		p.loading = false
		p.notify()
	}()

	items, err := p.gateway.ListByStatus(p.status)
	if err != nil {
		p.log.WithError(err).WithField("status", p.status).Error("Failed to load hackathons")
		return err
	}
	if items == nil {
		items = []models.Hackathon{}
	}
	p.items = items
	return nil
}

// RequestDelete asks the confirmer before anything else. Declined is a normal
// negative path: no delete call, list unchanged, nil error. Confirmed issues
// the delete and refreshes the list on success; on failure the row remains
// since no optimistic removal is performed.
func (p *Presenter) RequestDelete(id int64, confirm Confirmer) error {
	if !confirm.ConfirmDelete(id) {
		return nil
	}

	if err := p.gateway.Delete(id); err != nil {
		p.log.WithError(err).WithField("id", id).Error("Failed to delete hackathon")
		return err
	}
	return p.Refresh()
}

// Summarize projects a record into its list rendering.
func Summarize(rec models.Hackathon) Summary {
	description := rec.Description
	if description == "" {
		description = descriptionPlaceholder
	}
	return Summary{
		ID:          rec.ID,
		Title:       rec.Name,
		Description: description,
		DateRange:   fmt.Sprintf("%s - %s", rec.StartDate, rec.EndDate),
		Mode:        rec.Mode,
	}
}

// SummarizeAll projects every record in items, preserving order.
func SummarizeAll(items []models.Hackathon) []Summary {
	summaries := make([]Summary, 0, len(items))
	for _, rec := range items {
		summaries = append(summaries, Summarize(rec))
	}
	return summaries
}
