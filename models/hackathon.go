package models

// Status values partition records between the two admin views.
const (
	StatusUpcoming = "upcoming"
	StatusOngoing  = "ongoing"
)

// Mode values for the optional mode field. An empty string means unset.
const (
	ModeOnline  = "Online"
	ModeOffline = "Offline"
	ModeHybrid  = "Hybrid"
)

// Hackathon represents a single hackathon listing in the database.
// All columns except id are TEXT; start_date and end_date hold ISO calendar
// dates (YYYY-MM-DD) and are compared lexically by the store's ordering.
type Hackathon struct {
	ID               int64  `json:"id,omitempty"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ImageURL         string `json:"image_url"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Time             string `json:"time"`
	Mode             string `json:"mode"`
	RegistrationLink string `json:"registration_link"`
	Status           string `json:"status"`
}

// HackathonPayload is the outgoing wire shape for inserts and updates.
// It carries every editable column and never the id, which the database
// assigns on insert and which is immutable afterwards.
//
// There is deliberately no ordering constraint between StartDate and EndDate.
type HackathonPayload struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	ImageURL         string `json:"image_url"`
	StartDate        string `json:"start_date" validate:"required"`
	EndDate          string `json:"end_date" validate:"required"`
	Time             string `json:"time"`
	Mode             string `json:"mode" validate:"omitempty,oneof=Online Offline Hybrid"`
	RegistrationLink string `json:"registration_link"`
	Status           string `json:"status" validate:"required,oneof=upcoming ongoing"`
}

// Payload returns the editable fields of h as an outgoing payload.
func (h Hackathon) Payload() HackathonPayload {
	return HackathonPayload{
		Name:             h.Name,
		Description:      h.Description,
		ImageURL:         h.ImageURL,
		StartDate:        h.StartDate,
		EndDate:          h.EndDate,
		Time:             h.Time,
		Mode:             h.Mode,
		RegistrationLink: h.RegistrationLink,
		Status:           h.Status,
	}
}
