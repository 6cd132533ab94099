package controllers

import (
	"log/slog"
	"net/http"

	h "tutorly/internal/delivery/http/helpers"
	"tutorly/internal/delivery/http/middleware"
	"tutorly/internal/domain"
)

// BookSlotRequest is the request body for POST /tutors/{tutorID}/slots/{slotID}/book.
type BookSlotRequest struct {
	Remarks string `json:"remarks,omitempty"`
}

// Validate implements Validator. All booking fields come from the path and the
// authenticated user; the body only carries optional remarks.
func (b BookSlotRequest) Validate() []string { return nil }

// SessionListResponse is the response body for GET /sessions.
type SessionListResponse struct {
	Sessions   []*domain.Session `json:"sessions"`
	Pagination h.PaginationMeta  `json:"pagination"`
}

type ReservationController struct {
	Logger  *slog.Logger
	Service domain.ReservationService
}

func NewReservationController(logger *slog.Logger, svc domain.ReservationService) *ReservationController {
	return &ReservationController{
		Logger:  logger,
		Service: svc,
	}
}

// Book godoc
// @Summary Book a slot
// @Description Claims an open slot for the authenticated student and records the session. When several students race for the same slot, exactly one wins; the rest receive 409.
// @Tags sessions
// @Accept json
// @Produce json
// @Param tutorID path string true "Tutor ID"
// @Param slotID path string true "Slot ID"
// @Param body body BookSlotRequest false "Optional remarks"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Security BearerAuth
// @Router /tutors/{tutorID}/slots/{slotID}/book [post]
func (c *ReservationController) Book(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !h.DecodeAndValidate(w, r, &req) {
			return
		}
	}
	studentID, _ := middleware.UserIDFromContext(r.Context())
	session, err := c.Service.BookSlot(r.Context(), domain.BookSlotInput{
		StudentID: studentID,
		TutorID:   r.PathValue("tutorID"),
		SlotID:    r.PathValue("slotID"),
		Remarks:   req.Remarks,
	})
	if err != nil {
		h.WriteDomainError(w, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, session)
}

// List godoc
// @Summary List my sessions
// @Description Returns the authenticated user's sessions, as student or tutor, oldest first. Optionally filtered by status.
// @Tags sessions
// @Produce json
// @Param status query string false "Filter by status: upcoming or completed"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains sessions and pagination metadata"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Security BearerAuth
// @Router /sessions [get]
func (c *ReservationController) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	sessions, err := c.Service.ListSessionsByParticipant(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteDomainError(w, err)
		return
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.SessionStatus(s)
		if status != domain.SessionStatusUpcoming && status != domain.SessionStatusCompleted {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "status must be \"upcoming\" or \"completed\"")
			return
		}
		filtered := sessions[:0:0]
		for _, session := range sessions {
			if session.Status == status {
				filtered = append(filtered, session)
			}
		}
		sessions = filtered
	}
	params := h.ParsePagination(r)
	total := len(sessions)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	h.WriteJSONSuccess(w, http.StatusOK, SessionListResponse{
		Sessions:   sessions[start:end],
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Get godoc
// @Summary Get a session
// @Description Returns a session by id. Only participants may view it.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains the session"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Security BearerAuth
// @Router /sessions/{sessionID} [get]
func (c *ReservationController) Get(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.GetSession(r.Context(), r.PathValue("sessionID"))
	if err != nil {
		h.WriteDomainError(w, err)
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	if session.StudentID != userID && session.TutorID != userID {
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "not a participant of this session")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, session)
}

// Complete godoc
// @Summary Mark a session completed
// @Description Moves an upcoming session to completed. The transition is one-way; repeating it returns 409.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Security BearerAuth
// @Router /sessions/{sessionID}/complete [post]
func (c *ReservationController) Complete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	session, err := c.Service.CompleteSession(r.Context(), r.PathValue("sessionID"), userID)
	if err != nil {
		h.WriteDomainError(w, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, session)
}
