package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heatonjb/BirthdayBuddy/internal/delivery/http/helpers"
	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

// SubmitRSVPRequest is the request body for POST /events/{guestToken}/rsvp.
type SubmitRSVPRequest struct {
	ParentEmail     string `json:"parent_email"`
	ChildName       string `json:"child_name"`
	ChildBirthMonth string `json:"child_birth_month"`
	ReceiveUpdates  bool   `json:"receive_updates"`
	Attending       bool   `json:"attending"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (s SubmitRSVPRequest) Validate() []string {
	var errs []string
	if s.ParentEmail == "" {
		errs = append(errs, "parent_email is required")
	} else if !emailRegex.MatchString(s.ParentEmail) {
		errs = append(errs, "parent_email must be a valid email address")
	}
	if s.ChildName == "" {
		errs = append(errs, "child_name is required")
	}
	if s.ChildBirthMonth == "" {
		errs = append(errs, "child_birth_month is required")
	} else if !domain.IsBirthMonth(s.ChildBirthMonth) {
		errs = append(errs, "child_birth_month must be a full English month name")
	}
	return errs
}

// SubmitRSVPSuccessResponse is the success response envelope for POST /events/{guestToken}/rsvp (201).
type SubmitRSVPSuccessResponse struct {
	Data  *domain.RSVP      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RSVPCountResponse is the response body for GET /events/{guestToken}/rsvp-count.
type RSVPCountResponse struct {
	Count int `json:"count"`
}

// RSVPCountSuccessResponse is the success response envelope for GET /events/{guestToken}/rsvp-count (200).
type RSVPCountSuccessResponse struct {
	Data  RSVPCountResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RSVPSummariesSuccessResponse is the success response envelope for GET /events/{guestToken}/rsvps (200).
type RSVPSummariesSuccessResponse struct {
	Data  []*domain.RSVPSummary `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// RSVPListSuccessResponse is the success response envelope for GET /events/{adminToken}/admin/rsvps (200).
type RSVPListSuccessResponse struct {
	Data  []*domain.RSVP    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitRSVP godoc
// @Summary RSVP to an event
// @Description Records a guest's response. A respondent email can RSVP once per event; a second attempt returns 409. On success a confirmation email with a calendar invite is sent to the respondent and, if the respondent opted into updates, the organizer is notified.
// @Tags rsvps
// @Accept json
// @Produce json
// @Param guestToken path string true "Guest token"
// @Param rsvp body SubmitRSVPRequest true "RSVP data"
// @Success 201 {object} controllers.SubmitRSVPSuccessResponse "data contains the created RSVP"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_rsvp"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{guestToken}/rsvp [post]
func (c *RSVPController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("guestToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guest token")
		return
	}
	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rsvp := domain.NewRSVP(0, req.ParentEmail, req.ChildName, req.ChildBirthMonth, req.ReceiveUpdates, req.Attending)
	if err := c.Service.SubmitRSVP(r.Context(), token, rsvp); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrDuplicateRSVP):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateRSVP, "this email has already RSVPed to this event")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rsvp)
}

// GetRSVPCount godoc
// @Summary Count RSVPs for an event
// @Tags rsvps
// @Produce json
// @Param guestToken path string true "Guest token"
// @Success 200 {object} controllers.RSVPCountSuccessResponse "data contains the RSVP count"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{guestToken}/rsvp-count [get]
func (c *RSVPController) GetRSVPCount(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("guestToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guest token")
		return
	}
	count, err := c.Service.CountRSVPs(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RSVPCountResponse{Count: count})
}

// ListRSVPSummaries godoc
// @Summary List RSVP summaries for an event
// @Description Returns the guest-safe subset of each RSVP: child name, birth month, and attendance. Respondent emails are never included.
// @Tags rsvps
// @Produce json
// @Param guestToken path string true "Guest token"
// @Success 200 {object} controllers.RSVPSummariesSuccessResponse "data contains the RSVP summaries"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{guestToken}/rsvps [get]
func (c *RSVPController) ListRSVPSummaries(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("guestToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guest token")
		return
	}
	summaries, err := c.Service.ListRSVPSummaries(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summaries)
}

// ListRSVPs godoc
// @Summary List full RSVPs for an event
// @Description Returns every RSVP with respondent emails and opt-in flags. Requires the admin token.
// @Tags rsvps
// @Produce json
// @Param adminToken path string true "Admin token"
// @Success 200 {object} controllers.RSVPListSuccessResponse "data contains the full RSVP list"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{adminToken}/admin/rsvps [get]
func (c *RSVPController) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("adminToken")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing admin token")
		return
	}
	rsvps, err := c.Service.ListRSVPs(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvps)
}
