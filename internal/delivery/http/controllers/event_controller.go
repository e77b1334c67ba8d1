package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/heatonjb/BirthdayBuddy/internal/delivery/http/helpers"
	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// eventDateLayouts are the accepted formats for event_date in request bodies.
// RFC3339 is preferred; the second form covers datetime-local pickers.
var eventDateLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

// parseEventDate parses s against the accepted event date layouts.
func parseEventDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// EventRequest is the request body for POST /events and PUT /events/{adminToken}/admin.
// The same shape serves both; updates overwrite every field.
type EventRequest struct {
	ParentEmail string   `json:"parent_email"`
	ChildName   string   `json:"child_name"`
	AgeTurning  int      `json:"age_turning"`
	EventDate   string   `json:"event_date"`
	Description string   `json:"description"`
	Interests   []string `json:"interests"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.ParentEmail == "" {
		errs = append(errs, "parent_email is required")
	} else if !emailRegex.MatchString(e.ParentEmail) {
		errs = append(errs, "parent_email must be a valid email address")
	}
	if e.ChildName == "" {
		errs = append(errs, "child_name is required")
	}
	if e.AgeTurning <= 0 {
		errs = append(errs, "age_turning must be a positive number")
	}
	if e.EventDate == "" {
		errs = append(errs, "event_date is required")
	} else if _, err := parseEventDate(e.EventDate); err != nil {
		errs = append(errs, "event_date must be RFC3339 or YYYY-MM-DDTHH:MM")
	}
	return errs
}

// CreateEventResponse is the response body for POST /events. Only the admin
// token is returned; the guest link arrives by email and via the admin view.
type CreateEventResponse struct {
	AdminToken string `json:"admin_token"`
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  CreateEventResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GuestViewSuccessResponse is the success response envelope for GET /events/{guestToken} (200).
type GuestViewSuccessResponse struct {
	Data  *domain.GuestView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventSuccessResponse is the success response envelope for the admin event endpoints (200).
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a birthday party event
// @Description Creates an event and issues an admin token and a guest token. The response carries only the admin token; the guest link is emailed to the organizer and available on the admin view.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the admin token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	eventDate, _ := parseEventDate(req.EventDate)
	event := domain.NewEvent(req.ParentEmail, req.ChildName, req.AgeTurning, eventDate, req.Description, req.Interests)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateEventResponse{AdminToken: event.AdminToken})
}

// GetEventByGuestToken godoc
// @Summary Get the guest view of an event
// @Description Returns the event as seen by guests: party details, interests, and gift suggestions. The admin token and organizer email are never included.
// @Tags events
// @Produce json
// @Param guestToken path string true "Guest token"
// @Success 200 {object} controllers.GuestViewSuccessResponse "data contains the guest view"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{guestToken} [get]
func (c *EventController) GetEventByGuestToken(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("guestToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guest token")
		return
	}
	event, err := c.Service.GetEventByGuestToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event.GuestProjection())
}

// GetEventByAdminToken godoc
// @Summary Get the admin view of an event
// @Description Returns the full event, including both tokens and the organizer email.
// @Tags events
// @Produce json
// @Param adminToken path string true "Admin token"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the full event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{adminToken}/admin [get]
func (c *EventController) GetEventByAdminToken(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("adminToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing admin token")
		return
	}
	event, err := c.Service.GetEventByAdminToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites the event's details. Tokens and timestamps are preserved.
// @Tags events
// @Accept json
// @Produce json
// @Param adminToken path string true "Admin token"
// @Param event body EventRequest true "New event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{adminToken}/admin [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("adminToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing admin token")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	eventDate, _ := parseEventDate(req.EventDate)
	upd := &domain.EventUpdate{
		ParentEmail: req.ParentEmail,
		ChildName:   req.ChildName,
		AgeTurning:  req.AgeTurning,
		EventDate:   eventDate,
		Description: req.Description,
		Interests:   req.Interests,
	}
	event, err := c.Service.UpdateEvent(r.Context(), token, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event and every RSVP attached to it.
// @Tags events
// @Produce json
// @Param adminToken path string true "Admin token"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{adminToken}/admin [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("adminToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing admin token")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), token); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "event deleted"})
}
