package domain

import (
	"context"
	"fmt"
	"time"
)

// Slot is an offered, not-yet-claimed availability window for a tutor.
// Once booked, a slot is immutable except for the Booked flag, which moves
// false -> true exactly once and never reverts.
type Slot struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutor_id"`
	Date      string    `json:"date"`  // ISO 8601 calendar date, e.g. "2025-09-07"
	Start     string    `json:"start"` // time of day "HH:MM", Start < End
	End       string    `json:"end"`
	Booked    bool      `json:"booked"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSlot returns an unbooked Slot with the given fields. ID is set by the store on add.
func NewSlot(tutorID, date, start, end string, createdAt time.Time) *Slot {
	return &Slot{
		TutorID:   tutorID,
		Date:      date,
		Start:     start,
		End:       end,
		CreatedAt: createdAt,
	}
}

// Validate checks the slot's date and time-of-day fields. All violations are
// reported as ErrInvalidInput so the caller can reject before any mutation.
func (s *Slot) Validate() error {
	if s.TutorID == "" {
		return fmt.Errorf("%w: tutor id is required", ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	start, err := time.Parse("15:04", s.Start)
	if err != nil {
		return fmt.Errorf("%w: start must be HH:MM", ErrInvalidInput)
	}
	end, err := time.Parse("15:04", s.End)
	if err != nil {
		return fmt.Errorf("%w: end must be HH:MM", ErrInvalidInput)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	return nil
}

// SlotStore owns the slot lifecycle for all tutors.
//
// Claim is the concurrency-critical operation: it must behave as an atomic
// check-booked-then-set per slot, so that under concurrent claims of the same
// slot id exactly one caller succeeds and the rest get ErrSlotAlreadyBooked.
type SlotStore interface {
	// Add stores a new slot and assigns its ID. The slot must already be validated.
	Add(ctx context.Context, slot *Slot) error
	// Remove deletes an unbooked slot. Missing or booked slots are left untouched
	// and no error is returned; booked slots are never removable.
	Remove(ctx context.Context, tutorID, slotID string) error
	// GetByID returns the slot, or ErrSlotNotFound.
	GetByID(ctx context.Context, tutorID, slotID string) (*Slot, error)
	// ListOpen returns the tutor's unbooked slots ordered by (date, start),
	// ties broken by insertion order. Each call is a fresh query.
	ListOpen(ctx context.Context, tutorID string) ([]*Slot, error)
	// Claim atomically flips Booked from false to true and returns the claimed
	// slot. Returns ErrSlotNotFound or ErrSlotAlreadyBooked on failure.
	Claim(ctx context.Context, tutorID, slotID string) (*Slot, error)
}
