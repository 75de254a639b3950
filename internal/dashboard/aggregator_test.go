package dashboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"hackhub/admin-api/models"
)

type fakeGateway struct {
	counts map[string]int64
	errs   map[string]error
}

func (f *fakeGateway) ListByStatus(status string) ([]models.Hackathon, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGateway) GetByID(id int64) (*models.Hackathon, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGateway) Insert(payload models.HackathonPayload) (*models.Hackathon, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGateway) Update(id int64, payload models.HackathonPayload) (*models.Hackathon, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGateway) Delete(id int64) error {
	return errors.New("not implemented")
}

func (f *fakeGateway) CountByStatus(status string) (int64, error) {
	if err := f.errs[status]; err != nil {
		return 0, err
	}
	return f.counts[status], nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&strings.Builder{})
	return log
}

func TestLoadCounts(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int64
		errs   map[string]error
		want   Stats
	}{
		{
			name:   "both queries succeed",
			counts: map[string]int64{models.StatusUpcoming: 3, models.StatusOngoing: 2},
			want:   Stats{Upcoming: 3, Ongoing: 2, Total: 5},
		},
		{
			name:   "upcoming query fails",
			counts: map[string]int64{models.StatusOngoing: 4},
			errs:   map[string]error{models.StatusUpcoming: errors.New("service down")},
			want:   Stats{Upcoming: 0, Ongoing: 4, Total: 4},
		},
		{
			name:   "ongoing query fails",
			counts: map[string]int64{models.StatusUpcoming: 7},
			errs:   map[string]error{models.StatusOngoing: errors.New("service down")},
			want:   Stats{Upcoming: 7, Ongoing: 0, Total: 7},
		},
		{
			name: "both queries fail",
			errs: map[string]error{
				models.StatusUpcoming: errors.New("service down"),
				models.StatusOngoing:  errors.New("service down"),
			},
			want: Stats{},
		},
		{
			name:   "no records",
			counts: map[string]int64{},
			want:   Stats{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAggregator(&fakeGateway{counts: tt.counts, errs: tt.errs}, testLogger())
			got := a.LoadCounts()
			if got != tt.want {
				t.Errorf("LoadCounts() = %+v, want %+v", got, tt.want)
			}
			if got.Total != got.Upcoming+got.Ongoing {
				t.Errorf("total invariant broken: %+v", got)
			}
		})
	}
}
