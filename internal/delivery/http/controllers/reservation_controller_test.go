package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tutorly/internal/delivery/http/helpers"
	"tutorly/internal/domain"
)

type mockReservationService struct {
	session  *domain.Session
	sessions []*domain.Session
	err      error

	gotInput domain.BookSlotInput
}

func (m *mockReservationService) BookSlot(ctx context.Context, in domain.BookSlotInput) (*domain.Session, error) {
	m.gotInput = in
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func (m *mockReservationService) CompleteSession(ctx context.Context, sessionID, userID string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func (m *mockReservationService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func (m *mockReservationService) ListSessionsByParticipant(ctx context.Context, userID string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func bookRequest(body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(http.MethodPost, "/tutors/t1/slots/s1/book", nil)
	} else {
		r = httptest.NewRequest(http.MethodPost, "/tutors/t1/slots/s1/book", strings.NewReader(body))
	}
	r.SetPathValue("tutorID", "t1")
	r.SetPathValue("slotID", "s1")
	return r
}

func TestReservationController_Book_Success(t *testing.T) {
	svc := &mockReservationService{session: &domain.Session{ID: "sess1", StudentID: "u1", TutorID: "t1"}}
	ctrl := NewReservationController(discardLogger(), svc)

	w := httptest.NewRecorder()
	ctrl.Book(w, asUser(bookRequest(`{"remarks": "struggling with calculus"}`), "u1", domain.RoleStudent))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	want := domain.BookSlotInput{StudentID: "u1", TutorID: "t1", SlotID: "s1", Remarks: "struggling with calculus"}
	if svc.gotInput != want {
		t.Fatalf("unexpected booking input: %+v", svc.gotInput)
	}
}

func TestReservationController_Book_EmptyBody(t *testing.T) {
	svc := &mockReservationService{session: &domain.Session{ID: "sess1"}}
	ctrl := NewReservationController(discardLogger(), svc)

	w := httptest.NewRecorder()
	ctrl.Book(w, asUser(bookRequest(""), "u1", domain.RoleStudent))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestReservationController_Book_Conflict(t *testing.T) {
	ctrl := NewReservationController(discardLogger(), &mockReservationService{err: domain.ErrSlotAlreadyBooked})

	w := httptest.NewRecorder()
	ctrl.Book(w, asUser(bookRequest(""), "u1", domain.RoleStudent))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "conflict" {
		t.Fatalf("expected conflict error, got %+v", resp.Error)
	}
}

func TestReservationController_Book_SlotNotFound(t *testing.T) {
	ctrl := NewReservationController(discardLogger(), &mockReservationService{err: domain.ErrSlotNotFound})

	w := httptest.NewRecorder()
	ctrl.Book(w, asUser(bookRequest(""), "u1", domain.RoleStudent))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestReservationController_List_Paginates(t *testing.T) {
	sessions := []*domain.Session{
		{ID: "a", StudentID: "u1"},
		{ID: "b", StudentID: "u1"},
		{ID: "c", StudentID: "u1"},
	}
	ctrl := NewReservationController(discardLogger(), &mockReservationService{sessions: sessions})

	req := httptest.NewRequest(http.MethodGet, "/sessions?page=2&page_size=2", nil)
	w := httptest.NewRecorder()

	ctrl.List(w, asUser(req, "u1", domain.RoleStudent))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data SessionListResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data.Sessions) != 1 || resp.Data.Sessions[0].ID != "c" {
		t.Fatalf("unexpected page contents: %+v", resp.Data.Sessions)
	}
	if resp.Data.Pagination.Total != 3 {
		t.Fatalf("unexpected pagination meta: %+v", resp.Data.Pagination)
	}
}

func TestReservationController_List_StatusFilter(t *testing.T) {
	sessions := []*domain.Session{
		{ID: "a", StudentID: "u1", Status: domain.SessionStatusUpcoming},
		{ID: "b", StudentID: "u1", Status: domain.SessionStatusCompleted},
		{ID: "c", StudentID: "u1", Status: domain.SessionStatusUpcoming},
	}
	ctrl := NewReservationController(discardLogger(), &mockReservationService{sessions: sessions})

	t.Run("filters by status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sessions?status=upcoming", nil)
		w := httptest.NewRecorder()

		ctrl.List(w, asUser(req, "u1", domain.RoleStudent))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var resp struct {
			Data SessionListResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if len(resp.Data.Sessions) != 2 || resp.Data.Sessions[0].ID != "a" || resp.Data.Sessions[1].ID != "c" {
			t.Fatalf("unexpected sessions: %+v", resp.Data.Sessions)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sessions?status=cancelled", nil)
		w := httptest.NewRecorder()

		ctrl.List(w, asUser(req, "u1", domain.RoleStudent))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestReservationController_Get(t *testing.T) {
	t.Run("participant sees session", func(t *testing.T) {
		svc := &mockReservationService{session: &domain.Session{ID: "sess1", StudentID: "u1", TutorID: "t1"}}
		ctrl := NewReservationController(discardLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/sessions/sess1", nil)
		req.SetPathValue("sessionID", "sess1")
		w := httptest.NewRecorder()

		ctrl.Get(w, asUser(req, "t1", domain.RoleTutor))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc := &mockReservationService{session: &domain.Session{ID: "sess1", StudentID: "u1", TutorID: "t1"}}
		ctrl := NewReservationController(discardLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/sessions/sess1", nil)
		req.SetPathValue("sessionID", "sess1")
		w := httptest.NewRecorder()

		ctrl.Get(w, asUser(req, "u2", domain.RoleStudent))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := NewReservationController(discardLogger(), &mockReservationService{err: domain.ErrSessionNotFound})

		req := httptest.NewRequest(http.MethodGet, "/sessions/missing", nil)
		req.SetPathValue("sessionID", "missing")
		w := httptest.NewRecorder()

		ctrl.Get(w, asUser(req, "u1", domain.RoleStudent))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}

func TestReservationController_Complete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockReservationService{session: &domain.Session{ID: "sess1", Status: domain.SessionStatusCompleted}}
		ctrl := NewReservationController(discardLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/sessions/sess1/complete", nil)
		req.SetPathValue("sessionID", "sess1")
		w := httptest.NewRecorder()

		ctrl.Complete(w, asUser(req, "u1", domain.RoleStudent))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := NewReservationController(discardLogger(), &mockReservationService{err: domain.ErrInvalidTransition})

		req := httptest.NewRequest(http.MethodPost, "/sessions/sess1/complete", nil)
		req.SetPathValue("sessionID", "sess1")
		w := httptest.NewRecorder()

		ctrl.Complete(w, asUser(req, "u1", domain.RoleStudent))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
		}
	})

	t.Run("non-participant", func(t *testing.T) {
		ctrl := NewReservationController(discardLogger(), &mockReservationService{err: domain.ErrForbidden})

		req := httptest.NewRequest(http.MethodPost, "/sessions/sess1/complete", nil)
		req.SetPathValue("sessionID", "sess1")
		w := httptest.NewRecorder()

		ctrl.Complete(w, asUser(req, "u2", domain.RoleStudent))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}
	})
}
