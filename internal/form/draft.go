package form

import (
	"fmt"

	"hackhub/admin-api/models"
)

// Draft is the working copy of a record being created or edited. It is a
// plain value: field updates go through WithField, which returns a new Draft
// rather than mutating in place.
type Draft struct {
	Name             string
	Description      string
	ImageURL         string
	StartDate        string
	EndDate          string
	Time             string
	Mode             string
	RegistrationLink string
	Status           string
}

// NewDraft returns an empty draft whose status defaults to the view that
// created it.
func NewDraft(defaultStatus string) Draft {
	return Draft{Status: defaultStatus}
}

// DraftFromRecord copies an existing record into a draft. Fields are plain
// strings, so unset optionals are already empty strings rather than nulls.
func DraftFromRecord(rec models.Hackathon) Draft {
	return Draft{
		Name:             rec.Name,
		Description:      rec.Description,
		ImageURL:         rec.ImageURL,
		StartDate:        rec.StartDate,
		EndDate:          rec.EndDate,
		Time:             rec.Time,
		Mode:             rec.Mode,
		RegistrationLink: rec.RegistrationLink,
		Status:           rec.Status,
	}
}

// WithField returns a copy of d with the named field replaced. Field names
// follow the wire contract (column names). No validation happens here;
// validation is deferred to submit.
func (d Draft) WithField(name, value string) (Draft, error) {
	switch name {
	case "name":
		d.Name = value
	case "description":
		d.Description = value
	case "image_url":
		d.ImageURL = value
	case "start_date":
		d.StartDate = value
	case "end_date":
		d.EndDate = value
	case "time":
		d.Time = value
	case "mode":
		d.Mode = value
	case "registration_link":
		d.RegistrationLink = value
	case "status":
		d.Status = value
	default:
		return d, fmt.Errorf("unknown draft field %q", name)
	}
	return d, nil
}

// Payload returns the draft as an outgoing wire payload.
func (d Draft) Payload() models.HackathonPayload {
	return models.HackathonPayload{
		Name:             d.Name,
		Description:      d.Description,
		ImageURL:         d.ImageURL,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Time:             d.Time,
		Mode:             d.Mode,
		RegistrationLink: d.RegistrationLink,
		Status:           d.Status,
	}
}
