package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"hackhub/admin-api/models"
)

const hackathonTable = "hackathons"

// Gateway is the persistence surface the workflow components depend on.
// The remote store is the sole source of truth; every call is an independent
// request with no client-side transaction or retry.
type Gateway interface {
	// ListByStatus returns all records with the given status, ordered by
	// start_date ascending.
	ListByStatus(status string) ([]models.Hackathon, error)
	// GetByID returns the record with the given id, or an error when it
	// does not exist.
	GetByID(id int64) (*models.Hackathon, error)
	// Insert creates a new record and returns the stored representation,
	// including the store-assigned id.
	Insert(payload models.HackathonPayload) (*models.Hackathon, error)
	// Update replaces the editable fields of the record with the given id
	// and returns the stored representation.
	Update(id int64, payload models.HackathonPayload) (*models.Hackathon, error)
	// Delete removes the record with the given id.
	Delete(id int64) error
	// CountByStatus returns the number of records with the given status
	// without fetching row data.
	CountByStatus(status string) (int64, error)
}

// Supabase implements Gateway against the hackathons table through the
// Supabase PostgREST client.
type Supabase struct {
	client *supa.Client
}

// NewSupabase returns a Gateway backed by the given Supabase client.
func NewSupabase(client *supa.Client) *Supabase {
	return &Supabase{client: client}
}

func (s *Supabase) ListByStatus(status string) ([]models.Hackathon, error) {
	body, _, err := s.client.From(hackathonTable).
		Select("*", "", false).
		Eq("status", status).
		Order("start_date", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching hackathons with status %q: %w", status, err)
	}

	var hackathons []models.Hackathon
	if err := json.Unmarshal(body, &hackathons); err != nil {
		return nil, fmt.Errorf("decoding hackathon list: %w", err)
	}
	return hackathons, nil
}

func (s *Supabase) GetByID(id int64) (*models.Hackathon, error) {
	body, _, err := s.client.From(hackathonTable).
		Select("*", "", false).
		Eq("id", formatID(id)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching hackathon %d: %w", id, err)
	}

	var hackathons []models.Hackathon
	if err := json.Unmarshal(body, &hackathons); err != nil {
		return nil, fmt.Errorf("decoding hackathon %d: %w", id, err)
	}
	if len(hackathons) == 0 {
		return nil, fmt.Errorf("hackathon %d: %w", id, ErrNotFound)
	}
	return &hackathons[0], nil
}

func (s *Supabase) Insert(payload models.HackathonPayload) (*models.Hackathon, error) {
	body, _, err := s.client.From(hackathonTable).
		Insert(payload, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("inserting hackathon: %w", err)
	}
	return single(body)
}

func (s *Supabase) Update(id int64, payload models.HackathonPayload) (*models.Hackathon, error) {
	body, _, err := s.client.From(hackathonTable).
		Update(payload, "representation", "").
		Eq("id", formatID(id)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("updating hackathon %d: %w", id, err)
	}

	var hackathons []models.Hackathon
	if err := json.Unmarshal(body, &hackathons); err != nil {
		return nil, fmt.Errorf("decoding updated hackathon %d: %w", id, err)
	}
	if len(hackathons) == 0 {
		return nil, fmt.Errorf("hackathon %d: %w", id, ErrNotFound)
	}
	return &hackathons[0], nil
}

func (s *Supabase) Delete(id int64) error {
	_, _, err := s.client.From(hackathonTable).
		Delete("minimal", "").
		Eq("id", formatID(id)).
		Execute()
	if err != nil {
		return fmt.Errorf("deleting hackathon %d: %w", id, err)
	}
	return nil
}

func (s *Supabase) CountByStatus(status string) (int64, error) {
	// Head request with an exact count: no row data crosses the wire.
	_, count, err := s.client.From(hackathonTable).
		Select("id", "exact", true).
		Eq("status", status).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("counting hackathons with status %q: %w", status, err)
	}
	return count, nil
}

// single decodes a representation response expected to hold exactly one row.
func single(body []byte) (*models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := json.Unmarshal(body, &hackathons); err != nil {
		return nil, fmt.Errorf("decoding hackathon representation: %w", err)
	}
	if len(hackathons) == 0 {
		return nil, fmt.Errorf("representation response was empty")
	}
	return &hackathons[0], nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
