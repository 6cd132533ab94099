package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "tutorly/internal/delivery/http/helpers"
	"tutorly/internal/delivery/http/middleware"
	"tutorly/internal/domain"
)

// AddSlotRequest is the request body for POST /tutors/{tutorID}/slots.
type AddSlotRequest struct {
	Date  string `json:"date"`  // "YYYY-MM-DD"
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Validate implements Validator.
func (a AddSlotRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(a.Start) == "" {
		errs = append(errs, "start is required")
	}
	if strings.TrimSpace(a.End) == "" {
		errs = append(errs, "end is required")
	}
	return errs
}

// TutorProfileResponse is the response body for GET /tutors/{tutorID}.
type TutorProfileResponse struct {
	Tutor     *domain.User   `json:"tutor"`
	OpenSlots []*domain.Slot `json:"open_slots"`
}

// TutorListResponse is the response body for GET /tutors.
type TutorListResponse struct {
	Tutors     []*domain.User   `json:"tutors"`
	Pagination h.PaginationMeta `json:"pagination"`
}

type TutorController struct {
	Logger       *slog.Logger
	Tutors       domain.TutorService
	Availability domain.AvailabilityService
}

func NewTutorController(logger *slog.Logger, tutors domain.TutorService, availability domain.AvailabilityService) *TutorController {
	return &TutorController{
		Logger:       logger,
		Tutors:       tutors,
		Availability: availability,
	}
}

// List godoc
// @Summary List approved tutors
// @Description The public tutor directory. Only approved tutors appear.
// @Tags tutors
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains tutors and pagination metadata"
// @Router /tutors [get]
func (c *TutorController) List(w http.ResponseWriter, r *http.Request) {
	tutors, err := c.Tutors.ListApprovedTutors(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteDomainError(w, err)
		return
	}
	params := h.ParsePagination(r)
	total := len(tutors)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	h.WriteJSONSuccess(w, http.StatusOK, TutorListResponse{
		Tutors:     tutors[start:end],
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Get godoc
// @Summary Get a tutor profile
// @Description Returns an approved tutor together with their open slots.
// @Tags tutors
// @Produce json
// @Param tutorID path string true "Tutor ID"
// @Success 200 {object} helpers.APIResponse "data contains tutor and open_slots"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tutors/{tutorID} [get]
func (c *TutorController) Get(w http.ResponseWriter, r *http.Request) {
	tutorID := r.PathValue("tutorID")
	tutor, slots, err := c.Tutors.GetTutorProfile(r.Context(), tutorID)
	if err != nil {
		h.WriteDomainError(w, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, TutorProfileResponse{Tutor: tutor, OpenSlots: slots})
}

// AddSlot godoc
// @Summary Offer a new availability slot
// @Description Tutors add an open slot to their own calendar. Overlapping slots are allowed.
// @Tags slots
// @Accept json
// @Produce json
// @Param tutorID path string true "Tutor ID"
// @Param body body AddSlotRequest true "Slot data"
// @Success 201 {object} helpers.APIResponse "data contains the created slot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Security BearerAuth
// @Router /tutors/{tutorID}/slots [post]
func (c *TutorController) AddSlot(w http.ResponseWriter, r *http.Request) {
	tutorID := r.PathValue("tutorID")
	if userID, _ := middleware.UserIDFromContext(r.Context()); userID != tutorID {
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "cannot manage another tutor's slots")
		return
	}
	var req AddSlotRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := c.Availability.AddSlot(r.Context(), tutorID, req.Date, req.Start, req.End)
	if err != nil {
		h.WriteDomainError(w, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, slot)
}

// RemoveSlot godoc
// @Summary Withdraw an availability slot
// @Description Removes an open slot. Booked slots and unknown ids are left untouched; the call still succeeds.
// @Tags slots
// @Produce json
// @Param tutorID path string true "Tutor ID"
// @Param slotID path string true "Slot ID"
// @Success 204 "No content"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Security BearerAuth
// @Router /tutors/{tutorID}/slots/{slotID} [delete]
func (c *TutorController) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	tutorID := r.PathValue("tutorID")
	if userID, _ := middleware.UserIDFromContext(r.Context()); userID != tutorID {
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "cannot manage another tutor's slots")
		return
	}
	if err := c.Availability.RemoveSlot(r.Context(), tutorID, r.PathValue("slotID")); err != nil {
		h.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSlots godoc
// @Summary List a tutor's open slots
// @Description Returns the tutor's unbooked slots ordered by date, then start time.
// @Tags slots
// @Produce json
// @Param tutorID path string true "Tutor ID"
// @Success 200 {object} helpers.APIResponse "data contains the open slots"
// @Router /tutors/{tutorID}/slots [get]
func (c *TutorController) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := c.Availability.ListOpenSlots(r.Context(), r.PathValue("tutorID"))
	if err != nil {
		h.WriteDomainError(w, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, slots)
}
