package memory

import (
	"context"
	"sync"
	"time"

	"tutorly/internal/domain"
)

// SessionLedger is an append-only in-memory record of sessions. Safe for
// concurrent use.
type SessionLedger struct {
	mu       sync.RWMutex
	sessions []*domain.Session
	byID     map[string]*domain.Session
}

// NewSessionLedger returns an empty SessionLedger.
func NewSessionLedger() *SessionLedger {
	return &SessionLedger{byID: make(map[string]*domain.Session)}
}

// Append stores the session. The caller assigns the id; a collision is ErrDuplicateID.
func (l *SessionLedger) Append(ctx context.Context, session *domain.Session) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.byID[session.ID]; ok {
		return domain.ErrDuplicateID
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	stored := *session
	l.sessions = append(l.sessions, &stored)
	l.byID[stored.ID] = &stored
	return nil
}

func (l *SessionLedger) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.byID[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

// FindByParticipant returns sessions where userID is the student or the tutor,
// in insertion order.
func (l *SessionLedger) FindByParticipant(ctx context.Context, userID string) ([]*domain.Session, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []*domain.Session{}
	for _, s := range l.sessions {
		if s.StudentID == userID || s.TutorID == userID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (l *SessionLedger) UpdateStatus(ctx context.Context, sessionID string, status domain.SessionStatus) (*domain.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.byID[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.Status = status
	copied := *s
	return &copied, nil
}
