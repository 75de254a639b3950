package store

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	supa "github.com/supabase-community/supabase-go"

	"hackhub/admin-api/models"
)

// recordedRequest captures what the gateway put on the wire.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Prefer string
	Body   []byte
}

// newFakePostgrest spins up a PostgREST stand-in that records every request
// and replies with the given status, headers, and body.
func newFakePostgrest(t *testing.T, status int, header http.Header, body string) (*Supabase, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		query := make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  query,
			Prefer: r.Header.Get("Prefer"),
			Body:   payload,
		})

		for key, values := range header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if r.Method != http.MethodHead {
			w.Write([]byte(body))
		}
	}))
	t.Cleanup(server.Close)

	client, err := supa.NewClient(server.URL, "test-key", nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewSupabase(client), &requests
}

func TestListByStatus(t *testing.T) {
	rows := `[
		{"id":1,"name":"HackX","status":"upcoming","start_date":"2025-01-01","end_date":"2025-01-03"},
		{"id":2,"name":"HackY","status":"upcoming","start_date":"2025-02-01","end_date":"2025-02-02"}
	]`
	gateway, requests := newFakePostgrest(t, http.StatusOK, nil, rows)

	hackathons, err := gateway.ListByStatus(models.StatusUpcoming)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(hackathons) != 2 || hackathons[0].Name != "HackX" {
		t.Errorf("unexpected result: %+v", hackathons)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet {
		t.Errorf("method = %s, want GET", req.Method)
	}
	if req.Path != "/rest/v1/hackathons" {
		t.Errorf("path = %s, want /rest/v1/hackathons", req.Path)
	}
	if req.Query["status"] != "eq.upcoming" {
		t.Errorf("status filter = %q, want eq.upcoming", req.Query["status"])
	}
	if !strings.HasPrefix(req.Query["order"], "start_date.asc") {
		t.Errorf("order = %q, want ascending start_date", req.Query["order"])
	}
}

func TestListByStatusRemoteError(t *testing.T) {
	gateway, _ := newFakePostgrest(t, http.StatusInternalServerError, nil, `{"message":"boom"}`)

	if _, err := gateway.ListByStatus(models.StatusUpcoming); err == nil {
		t.Fatal("expected error from failing remote")
	}
}

func TestGetByID(t *testing.T) {
	gateway, requests := newFakePostgrest(t, http.StatusOK, nil,
		`[{"id":42,"name":"HackX","status":"ongoing"}]`)

	rec, err := gateway.GetByID(42)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec.ID != 42 || rec.Name != "HackX" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if got := (*requests)[0].Query["id"]; got != "eq.42" {
		t.Errorf("id filter = %q, want eq.42", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	gateway, _ := newFakePostgrest(t, http.StatusOK, nil, `[]`)

	_, err := gateway.GetByID(42)
	if err == nil {
		t.Fatal("expected error for missing record")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not wrap ErrNotFound", err)
	}
}

func TestInsert(t *testing.T) {
	gateway, requests := newFakePostgrest(t, http.StatusCreated, nil,
		`[{"id":7,"name":"HackX","status":"ongoing","start_date":"2025-01-01","end_date":"2025-01-03"}]`)

	payload := models.HackathonPayload{
		Name:      "HackX",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-03",
		Status:    models.StatusOngoing,
	}
	rec, err := gateway.Insert(payload)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if rec.ID != 7 {
		t.Errorf("store-assigned id = %d, want 7", rec.ID)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", req.Method)
	}
	if !strings.Contains(req.Prefer, "return=representation") {
		t.Errorf("Prefer = %q, want return=representation", req.Prefer)
	}

	var sent models.HackathonPayload
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("decoding sent body: %v", err)
	}
	if sent != payload {
		t.Errorf("wire payload %+v, want %+v", sent, payload)
	}
}

func TestUpdate(t *testing.T) {
	gateway, requests := newFakePostgrest(t, http.StatusOK, nil,
		`[{"id":42,"name":"HackX","mode":"Hybrid","status":"ongoing"}]`)

	payload := models.HackathonPayload{
		Name:      "HackX",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-03",
		Mode:      models.ModeHybrid,
		Status:    models.StatusOngoing,
	}
	rec, err := gateway.Update(42, payload)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Mode != models.ModeHybrid {
		t.Errorf("mode = %q, want Hybrid", rec.Mode)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", req.Method)
	}
	if got := req.Query["id"]; got != "eq.42" {
		t.Errorf("id filter = %q, want eq.42", got)
	}
}

func TestDelete(t *testing.T) {
	gateway, requests := newFakePostgrest(t, http.StatusNoContent, nil, "")

	if err := gateway.Delete(42); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	req := (*requests)[0]
	if req.Method != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", req.Method)
	}
	if got := req.Query["id"]; got != "eq.42" {
		t.Errorf("id filter = %q, want eq.42", got)
	}
}

func TestCountByStatus(t *testing.T) {
	header := http.Header{}
	header.Set("Content-Range", "0-4/5")
	gateway, requests := newFakePostgrest(t, http.StatusOK, header, "")

	count, err := gateway.CountByStatus(models.StatusOngoing)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}

	req := (*requests)[0]
	if req.Method != http.MethodHead {
		t.Errorf("method = %s, want HEAD (no row data)", req.Method)
	}
	if got := req.Query["status"]; got != "eq.ongoing" {
		t.Errorf("status filter = %q, want eq.ongoing", got)
	}
	if !strings.Contains(req.Prefer, "count=exact") {
		t.Errorf("Prefer = %q, want count=exact", req.Prefer)
	}
}
