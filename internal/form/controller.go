package form

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"hackhub/admin-api/internal/storage"
	"hackhub/admin-api/internal/store"
	"hackhub/admin-api/models"
)

// PendingImage is a selected-but-not-yet-uploaded image file.
type PendingImage struct {
	Filename string
	Data     []byte
}

// Snapshot is the immutable view of the controller published to subscribers
// after every state change.
type Snapshot struct {
	Draft     Draft
	Preview   string
	Open      bool
	Editing   bool
	EditingID int64
}

// Controller owns the draft state of one record form, for either the create
// or the edit flow. It coordinates the optional image upload ahead of the
// create/update call. A Controller drives a single form and expects one
// submit at a time; it is not safe for concurrent use.
type Controller struct {
	gateway       store.Gateway
	images        storage.ImageStore
	log           *logrus.Logger
	validate      *validator.Validate
	defaultStatus string

	draft     Draft
	pending   *PendingImage
	preview   string
	editingID *int64
	open      bool
	subs      []func(Snapshot)
}

// NewController returns a closed form controller for the admin view with the
// given default status.
func NewController(gateway store.Gateway, images storage.ImageStore, log *logrus.Logger, defaultStatus string) *Controller {
	return &Controller{
		gateway:       gateway,
		images:        images,
		log:           log,
		validate:      validator.New(),
		defaultStatus: defaultStatus,
		draft:         NewDraft(defaultStatus),
	}
}

// Subscribe registers fn to receive a snapshot after every state change.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.subs = append(c.subs, fn)
}

// Snapshot returns the current state of the form.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Draft:   c.draft,
		Preview: c.preview,
		Open:    c.open,
		Editing: c.editingID != nil,
	}
	if c.editingID != nil {
		snap.EditingID = *c.editingID
	}
	return snap
}

func (c *Controller) notify() {
	snap := c.Snapshot()
	for _, fn := range c.subs {
		fn(snap)
	}
}

// LoadForCreate resets the draft to empty defaults and opens the form in
// create mode. Any pending image is discarded.
func (c *Controller) LoadForCreate() {
	c.draft = NewDraft(c.defaultStatus)
	c.pending = nil
	c.preview = ""
	c.editingID = nil
	c.open = true
	c.notify()
}

// LoadForEdit copies an existing record into the draft, seeds the preview
// from its stored image URL, and records the target id for the update call.
func (c *Controller) LoadForEdit(rec models.Hackathon) {
	id := rec.ID
	c.draft = DraftFromRecord(rec)
	c.pending = nil
	c.preview = rec.ImageURL
	c.editingID = &id
	c.open = true
	c.notify()
}

// SetField applies a single-field draft transition.
func (c *Controller) SetField(name, value string) error {
	next, err := c.draft.WithField(name, value)
	if err != nil {
		return err
	}
	c.draft = next
	c.notify()
	return nil
}

// SetPendingImage stages an image file for upload on the next submit and
// derives a local data-URL preview for immediate display. Nothing is sent to
// the blob store yet.
func (c *Controller) SetPendingImage(filename string, data []byte) {
	c.pending = &PendingImage{Filename: filename, Data: data}
	c.preview = dataURL(data)
	c.notify()
}

// ClearPendingImage discards the staged file and preview and clears the
// draft's stored image URL, so a following submit persists "no image" unless
// the user re-selects one.
func (c *Controller) ClearPendingImage() {
	c.pending = nil
	c.preview = ""
	c.draft, _ = c.draft.WithField("image_url", "")
	c.notify()
}

// Submit validates the draft, uploads the pending image if one is staged, and
// issues the insert or update. An upload failure aborts the whole submit with
// nothing persisted. A persistence failure leaves the draft intact so the
// user can retry. On success the draft is reset and the form closed.
func (c *Controller) Submit() (*models.Hackathon, error) {
	payload := c.draft.Payload()
	if err := c.validate.Struct(payload); err != nil {
		return nil, err
	}

	if c.pending != nil {
		key := storage.NewObjectKey(c.pending.Filename)
		if err := c.images.Upload(key, c.pending.Data); err != nil {
			c.log.WithError(err).Error("Image upload failed, aborting submit")
			return nil, fmt.Errorf("uploading image: %w", err)
		}
		payload.ImageURL = c.images.PublicURL(key)
	}

	var (
		rec *models.Hackathon
		err error
	)
	if c.editingID != nil {
		rec, err = c.gateway.Update(*c.editingID, payload)
	} else {
		rec, err = c.gateway.Insert(payload)
	}
	if err != nil {
		c.log.WithError(err).Error("Failed to save hackathon")
		return nil, err
	}

	c.draft = NewDraft(c.defaultStatus)
	c.pending = nil
	c.preview = ""
	c.editingID = nil
	c.open = false
	c.notify()
	return rec, nil
}

// dataURL renders the staged bytes as a data: URI, mirroring what a browser
// file reader would show as the local preview.
func dataURL(data []byte) string {
	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
