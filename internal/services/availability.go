package services

import (
	"context"
	"fmt"
	"time"

	"tutorly/internal/domain"
)

// SlotRecorder counts added slots. May be nil to disable metrics.
type SlotRecorder interface {
	RecordSlotAdded()
}

type availabilityService struct {
	slots   domain.SlotStore
	metrics SlotRecorder
}

// NewAvailabilityService creates an AvailabilityService over the given slot store.
func NewAvailabilityService(slots domain.SlotStore, rec SlotRecorder) domain.AvailabilityService {
	return &availabilityService{slots: slots, metrics: rec}
}

// AddSlot validates and stores a new availability window. Overlapping windows
// for the same tutor are allowed.
func (s *availabilityService) AddSlot(ctx context.Context, tutorID, date, start, end string) (*domain.Slot, error) {
	slot := domain.NewSlot(tutorID, date, start, end, time.Now())
	if err := slot.Validate(); err != nil {
		return nil, err
	}
	if err := s.slots.Add(ctx, slot); err != nil {
		return nil, fmt.Errorf("add slot: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordSlotAdded()
	}
	return slot, nil
}

func (s *availabilityService) RemoveSlot(ctx context.Context, tutorID, slotID string) error {
	if tutorID == "" || slotID == "" {
		return fmt.Errorf("%w: tutor and slot ids are required", domain.ErrInvalidInput)
	}
	if err := s.slots.Remove(ctx, tutorID, slotID); err != nil {
		return fmt.Errorf("remove slot: %w", err)
	}
	return nil
}

func (s *availabilityService) ListOpenSlots(ctx context.Context, tutorID string) ([]*domain.Slot, error) {
	slots, err := s.slots.ListOpen(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", err)
	}
	return slots, nil
}
