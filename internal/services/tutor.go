package services

import (
	"context"
	"errors"
	"fmt"

	"tutorly/internal/domain"
)

type tutorService struct {
	userRepo domain.UserRepository
	slots    domain.SlotStore
}

// NewTutorService creates a TutorService over the user repository and slot store.
func NewTutorService(userRepo domain.UserRepository, slots domain.SlotStore) domain.TutorService {
	return &tutorService{userRepo: userRepo, slots: slots}
}

func (s *tutorService) ListApprovedTutors(ctx context.Context) ([]*domain.User, error) {
	tutors, err := s.userRepo.ListTutors(ctx, domain.TutorStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	return tutors, nil
}

// GetTutorProfile returns an approved tutor and their open slots. Pending and
// rejected tutors are not visible to students.
func (s *tutorService) GetTutorProfile(ctx context.Context, tutorID string) (*domain.User, []*domain.Slot, error) {
	tutor, err := s.userRepo.GetByID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("get tutor: %w", err)
	}
	if !tutor.IsTutor() || tutor.Status != domain.TutorStatusApproved {
		return nil, nil, domain.ErrUserNotFound
	}
	open, err := s.slots.ListOpen(ctx, tutorID)
	if err != nil {
		return nil, nil, fmt.Errorf("list open slots: %w", err)
	}
	return tutor, open, nil
}

// SetTutorStatus applies an admin moderation decision.
func (s *tutorService) SetTutorStatus(ctx context.Context, tutorID string, status domain.TutorStatus) (*domain.User, error) {
	if status != domain.TutorStatusApproved && status != domain.TutorStatusRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", domain.ErrInvalidInput)
	}
	tutor, err := s.userRepo.UpdateTutorStatus(ctx, tutorID, status)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update tutor status: %w", err)
	}
	return tutor, nil
}
