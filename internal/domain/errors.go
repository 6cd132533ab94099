package domain

import "errors"

// Sentinel errors returned by stores and services. Controllers map these to
// HTTP status codes; nothing in this package logs or swallows them.
var (
	// ErrInvalidInput reports malformed caller input (bad date, start >= end,
	// missing field). Returned before any state is touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSlotNotFound is returned when no slot with the given id exists for the tutor.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotAlreadyBooked is returned when a booking attempt loses the claim on a
	// slot. The caller may retry against a different slot, never the same one.
	ErrSlotAlreadyBooked = errors.New("slot already booked")

	// ErrSessionNotFound is returned when the ledger has no session with the given id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidTransition is returned on an illegal session status change,
	// e.g. completing a session that is already completed.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicateID is returned when appending a session whose id already exists
	// in the ledger. Should not occur given UUID id generation.
	ErrDuplicateID = errors.New("duplicate id")

	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrForbidden is returned when the acting user is not allowed to perform the
	// operation, e.g. completing a session they are not a participant of.
	ErrForbidden = errors.New("forbidden")
)
