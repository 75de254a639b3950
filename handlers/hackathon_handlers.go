package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hackhub/admin-api/internal/form"
	"hackhub/admin-api/internal/listing"
	"hackhub/admin-api/internal/store"
	"hackhub/admin-api/models"
	"hackhub/admin-api/utils"
)

// ListHackathons godoc
// @Summary List hackathons for one admin view
// @Description Retrieves all hackathons with the given status, ordered by start date.
// @Tags hackathons
// @Produce json
// @Param status query string false "View status (upcoming or ongoing)" default(upcoming)
// @Success 200 "List with summaries, or the empty-state placeholder"
// @Failure 500 "The previous list stays valid client-side; nothing was replaced"
// @Router /hackathons [get]
func (h *ApplicationHandler) ListHackathons(c *fiber.Ctx) error {
	status := c.Query("status", models.StatusUpcoming)
	if status != models.StatusUpcoming && status != models.StatusOngoing {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid status %q: must be %q or %q", status, models.StatusUpcoming, models.StatusOngoing))
	}

	presenter := listing.NewPresenter(h.Gateway, h.Logger, status)
	if err := presenter.Refresh(); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not retrieve hackathons: %v", err))
	}

	snap := presenter.Snapshot()
	return utils.RespondWithJSON(c, fiber.StatusOK, "Hackathons retrieved successfully", fiber.Map{
		"status":      snap.Status,
		"items":       listing.SummarizeAll(snap.Items),
		"placeholder": snap.Placeholder,
	})
}

// GetHackathon returns a single record with every field, as needed to seed
// the edit form.
func (h *ApplicationHandler) GetHackathon(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.Gateway.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound,
				fmt.Sprintf("Hackathon with ID %d not found", id))
		}
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not retrieve hackathon %d: %v", id, err))
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, "Hackathon retrieved successfully", rec)
}

// CreateHackathon godoc
// @Summary Create a hackathon
// @Description Accepts form fields plus an optional image file. The image is uploaded
// @Description before the insert; an upload failure aborts the whole request with
// @Description nothing persisted.
// @Tags hackathons
// @Accept mpfd
// @Produce json
// @Success 201 "Created record including the store-assigned id"
// @Failure 400 "Missing required fields or unknown field names"
// @Failure 500 "Upload or insert failed; no partial state was written"
// @Router /hackathons [post]
func (h *ApplicationHandler) CreateHackathon(c *fiber.Ctx) error {
	// The view query parameter names the admin view posting the form; it only
	// sets the draft's default status, which a status field still overrides.
	defaultStatus := c.Query("view", models.StatusUpcoming)

	controller := form.NewController(h.Gateway, h.Images, h.Logger, defaultStatus)
	controller.LoadForCreate()

	if err := h.applyRequest(c, controller); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := controller.Submit()
	if err != nil {
		return h.respondSubmitError(c, err, "create")
	}

	h.Logger.WithField("id", rec.ID).Info("Hackathon created")
	return utils.RespondWithJSON(c, fiber.StatusCreated, "Hackathon created successfully", rec)
}

// UpdateHackathon loads the target record into an edit draft, applies only
// the fields present in the request, and submits. Fields not sent carry the
// loaded record's values through unchanged, including image_url when no new
// file is attached.
func (h *ApplicationHandler) UpdateHackathon(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.Gateway.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound,
				fmt.Sprintf("Hackathon with ID %d not found", id))
		}
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not retrieve hackathon %d: %v", id, err))
	}

	controller := form.NewController(h.Gateway, h.Images, h.Logger, rec.Status)
	controller.LoadForEdit(*rec)

	if err := h.applyRequest(c, controller); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := controller.Submit()
	if err != nil {
		return h.respondSubmitError(c, err, "update")
	}

	h.Logger.WithField("id", updated.ID).Info("Hackathon updated")
	return utils.RespondWithJSON(c, fiber.StatusOK, "Hackathon updated successfully", updated)
}

// DeleteHackathon godoc
// @Summary Delete a hackathon
// @Description Destructive action gated on confirm=true. Without it the request is
// @Description the declined negative path: a no-op, not an error.
// @Tags hackathons
// @Produce json
// @Param id path int true "Hackathon ID"
// @Param confirm query bool false "Must be true for the delete to run"
// @Success 200 "Deleted (or declined no-op) with the refreshed list"
// @Failure 500 "Delete failed; the row is still present"
// @Router /hackathons/{id} [delete]
func (h *ApplicationHandler) DeleteHackathon(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	status := c.Query("status", models.StatusUpcoming)
	confirmed := c.Query("confirm") == "true"

	presenter := listing.NewPresenter(h.Gateway, h.Logger, status)
	err = presenter.RequestDelete(id, listing.ConfirmerFunc(func(int64) bool {
		return confirmed
	}))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not delete hackathon %d: %v", id, err))
	}

	if !confirmed {
		return utils.RespondWithJSON(c, fiber.StatusOK, "Delete not confirmed, nothing removed", nil)
	}

	snap := presenter.Snapshot()
	return utils.RespondWithJSON(c, fiber.StatusOK, "Hackathon deleted successfully", fiber.Map{
		"items":       listing.SummarizeAll(snap.Items),
		"placeholder": snap.Placeholder,
	})
}

// applyRequest feeds the request's form fields and optional image file into
// the form controller.
func (h *ApplicationHandler) applyRequest(c *fiber.Ctx, controller *form.Controller) error {
	fields, err := requestFields(c)
	if err != nil {
		return fmt.Errorf("cannot parse request body: %w", err)
	}
	for name, value := range fields {
		if err := controller.SetField(name, value); err != nil {
			return err
		}
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No file part is the common case; only multipart requests can carry one.
		return nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("cannot open uploaded image: %w", err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("cannot read uploaded image: %w", err)
	}
	controller.SetPendingImage(fileHeader.Filename, data)
	return nil
}

// requestFields extracts the record fields present in the request, from
// either a JSON object or form/multipart values. Only fields the client
// actually sent appear in the map.
func requestFields(c *fiber.Ctx) (map[string]string, error) {
	contentType := c.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		fields := make(map[string]string)
		if err := c.BodyParser(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	}

	fields := make(map[string]string)
	if multipartForm, err := c.MultipartForm(); err == nil && multipartForm != nil {
		for key, values := range multipartForm.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		return fields, nil
	}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields, nil
}

// respondSubmitError maps a form submit failure onto the HTTP surface:
// validation problems are the client's to fix, everything else is a remote
// failure with nothing (or nothing partial) persisted.
func (h *ApplicationHandler) respondSubmitError(c *fiber.Ctx, err error, action string) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(validationErrs),
		})
	}
	return utils.RespondWithError(c, fiber.StatusInternalServerError,
		fmt.Sprintf("Could not %s hackathon: %v", action, err))
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hackathon ID %q", c.Params("id"))
	}
	return id, nil
}
