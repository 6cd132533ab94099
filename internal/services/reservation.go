package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tutorly/internal/domain"
	"tutorly/internal/metrics"
)

type reservationService struct {
	slots    domain.SlotStore
	ledger   domain.SessionLedger
	users    domain.UserRepository
	email    domain.EmailService
	metrics  metrics.BookingRecorder
	logger   *slog.Logger
}

// NewReservationService creates a ReservationService coordinating the given
// slot store and session ledger. email may be nil to disable confirmations;
// rec may be nil to disable metrics.
func NewReservationService(
	slots domain.SlotStore,
	ledger domain.SessionLedger,
	users domain.UserRepository,
	email domain.EmailService,
	rec metrics.BookingRecorder,
	logger *slog.Logger,
) domain.ReservationService {
	return &reservationService{
		slots:   slots,
		ledger:  ledger,
		users:   users,
		email:   email,
		metrics: rec,
		logger:  logger,
	}
}

// BookSlot claims the slot and appends the resulting session. The claim is the
// linearization point: under concurrent calls on one slot id exactly one caller
// gets past it, so the ledger sees at most one session per slot. The claim
// happens last among the fallible reads, so a failed call leaves no state behind.
func (s *reservationService) BookSlot(ctx context.Context, in domain.BookSlotInput) (*domain.Session, error) {
	if in.StudentID == "" || in.TutorID == "" || in.SlotID == "" {
		return nil, fmt.Errorf("%w: student, tutor and slot ids are required", domain.ErrInvalidInput)
	}

	student, err := s.users.GetByID(ctx, in.StudentID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	tutor, err := s.users.GetByID(ctx, in.TutorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get tutor: %w", err)
	}
	if !tutor.IsTutor() {
		return nil, fmt.Errorf("%w: %s is not a tutor", domain.ErrInvalidInput, in.TutorID)
	}

	slot, err := s.slots.Claim(ctx, in.TutorID, in.SlotID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotAlreadyBooked) {
			if s.metrics != nil {
				s.metrics.RecordBookingConflict()
			}
			return nil, domain.ErrSlotAlreadyBooked
		}
		if errors.Is(err, domain.ErrSlotNotFound) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("claim slot: %w", err)
	}

	session := &domain.Session{
		ID:              uuid.NewString(),
		StudentID:       student.ID,
		TutorID:         tutor.ID,
		Subject:         tutor.Subject,
		Date:            slot.Date,
		StartTime:       slot.Start,
		DurationMinutes: domain.DefaultSessionMinutes,
		Status:          domain.SessionStatusUpcoming,
		Topic:           fmt.Sprintf("%s One-to-one", tutor.Subject),
		StudentName:     student.Name,
		TutorName:       tutor.Name,
		Remarks:         in.Remarks,
		CreatedAt:       time.Now(),
	}
	if err := s.ledger.Append(ctx, session); err != nil {
		return nil, fmt.Errorf("append session: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordBooking()
	}
	s.logger.InfoContext(ctx, "slot booked",
		"session_id", session.ID,
		"student_id", student.ID,
		"tutor_id", tutor.ID,
		"slot_id", slot.ID,
	)

	// Best effort. A mail failure never fails a confirmed booking.
	if s.email != nil {
		data := &domain.BookingConfirmationEmailData{
			Email:       student.Email,
			StudentName: student.Name,
			TutorName:   tutor.Name,
			Subject:     tutor.Subject,
			Date:        session.Date,
			StartTime:   session.StartTime,
			Minutes:     session.DurationMinutes,
		}
		if err := s.email.SendBookingConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "booking confirmation email failed", "session_id", session.ID, "err", err)
		}
	}

	return session, nil
}

// CompleteSession moves an upcoming session to completed. Only a participant
// of the session may complete it.
func (s *reservationService) CompleteSession(ctx context.Context, sessionID, userID string) (*domain.Session, error) {
	session, err := s.ledger.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	if userID != "" && session.StudentID != userID && session.TutorID != userID {
		return nil, fmt.Errorf("%w: not a participant", domain.ErrForbidden)
	}
	if session.Status != domain.SessionStatusUpcoming {
		return nil, domain.ErrInvalidTransition
	}
	updated, err := s.ledger.UpdateStatus(ctx, sessionID, domain.SessionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("update session status: %w", err)
	}
	return updated, nil
}

func (s *reservationService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.ledger.FindByID(ctx, sessionID)
}

func (s *reservationService) ListSessionsByParticipant(ctx context.Context, userID string) ([]*domain.Session, error) {
	sessions, err := s.ledger.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
