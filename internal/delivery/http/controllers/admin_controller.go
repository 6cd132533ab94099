package controllers

import (
	"log/slog"
	"net/http"

	h "tutorly/internal/delivery/http/helpers"
	"tutorly/internal/domain"
)

// UpdateTutorStatusRequest is the request body for PATCH /admin/tutors/{tutorID}/status.
type UpdateTutorStatusRequest struct {
	Status string `json:"status"` // "approved" or "rejected"
}

// Validate implements Validator.
func (u UpdateTutorStatusRequest) Validate() []string {
	switch domain.TutorStatus(u.Status) {
	case domain.TutorStatusApproved, domain.TutorStatusRejected:
		return nil
	default:
		return []string{"status must be \"approved\" or \"rejected\""}
	}
}

type AdminController struct {
	Logger *slog.Logger
	Tutors domain.TutorService
}

func NewAdminController(logger *slog.Logger, tutors domain.TutorService) *AdminController {
	return &AdminController{
		Logger: logger,
		Tutors: tutors,
	}
}

// UpdateTutorStatus godoc
// @Summary Moderate a tutor profile
// @Description Admin-only. Approves or rejects a pending tutor. Approved tutors appear in the public directory.
// @Tags admin
// @Accept json
// @Produce json
// @Param tutorID path string true "Tutor ID"
// @Param body body UpdateTutorStatusRequest true "Moderation decision"
// @Success 200 {object} helpers.APIResponse "data contains the updated tutor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Security BearerAuth
// @Router /admin/tutors/{tutorID}/status [patch]
func (c *AdminController) UpdateTutorStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateTutorStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	tutorID := r.PathValue("tutorID")
	tutor, err := c.Tutors.SetTutorStatus(r.Context(), tutorID, domain.TutorStatus(req.Status))
	if err != nil {
		h.WriteDomainError(w, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "tutor status updated", "tutor_id", tutorID, "status", req.Status)
	h.WriteJSONSuccess(w, http.StatusOK, tutor)
}
