package domain

import (
	"context"
	"time"
)

// SessionStatus is the lifecycle state of a booked session.
// upcoming is the only initial state; completed is terminal.
type SessionStatus string

const (
	SessionStatusUpcoming  SessionStatus = "upcoming"
	SessionStatusCompleted SessionStatus = "completed"
)

// DefaultSessionMinutes is the fixed session length assigned at booking time.
const DefaultSessionMinutes = 60

// Session is the confirmed booking produced by claiming a slot. Immutable at
// creation except for Status, which transitions upcoming -> completed one way.
// swagger:model Session
type Session struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	TutorID         string        `json:"tutor_id"`
	Subject         string        `json:"subject"`
	Date            string        `json:"date"`       // calendar date of the claimed slot
	StartTime       string        `json:"start_time"` // "HH:MM", the slot's start
	DurationMinutes int           `json:"duration_minutes"`
	Status          SessionStatus `json:"status"`
	Topic           string        `json:"topic"`
	StudentName     string        `json:"student_name"`
	TutorName       string        `json:"tutor_name"`
	Remarks         string        `json:"remarks,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// SessionLedger is the append-only record of confirmed sessions. Sessions are
// created only through a successful slot booking.
type SessionLedger interface {
	// Append stores a new session. Returns ErrDuplicateID if the id exists.
	Append(ctx context.Context, session *Session) error
	// FindByID returns the session, or ErrSessionNotFound.
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	// FindByParticipant returns all sessions where userID is the student or the
	// tutor, in insertion order.
	FindByParticipant(ctx context.Context, userID string) ([]*Session, error)
	// UpdateStatus persists a status change already validated by the caller.
	// Returns ErrSessionNotFound if the id is unknown.
	UpdateStatus(ctx context.Context, sessionID string, status SessionStatus) (*Session, error)
}

// BookSlotInput carries the caller-supplied parts of a booking request.
type BookSlotInput struct {
	StudentID string
	TutorID   string
	SlotID    string
	Remarks   string
}

// ReservationService coordinates the slot store and the session ledger. It owns
// neither; the no-double-booking guarantee lives in SlotStore.Claim.
type ReservationService interface {
	// BookSlot atomically claims the slot and appends the resulting session.
	// Exactly one slot mutation and one ledger append per success; no partial
	// effects on failure.
	BookSlot(ctx context.Context, in BookSlotInput) (*Session, error)
	// CompleteSession moves an upcoming session to completed. userID must be a
	// participant of the session.
	CompleteSession(ctx context.Context, sessionID, userID string) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	ListSessionsByParticipant(ctx context.Context, userID string) ([]*Session, error)
}

// AvailabilityService manages a tutor's offered slots.
type AvailabilityService interface {
	AddSlot(ctx context.Context, tutorID, date, start, end string) (*Slot, error)
	// RemoveSlot deletes an unbooked slot; missing or booked slots are a no-op.
	RemoveSlot(ctx context.Context, tutorID, slotID string) error
	ListOpenSlots(ctx context.Context, tutorID string) ([]*Slot, error)
}
