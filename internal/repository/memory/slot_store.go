// Package memory provides in-memory implementations of the storage ports.
// It is the default backend and the reference for the claim semantics: all
// mutations happen under the store mutex, so check-then-set on the booked
// flag is atomic per store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tutorly/internal/domain"
)

// SlotStore keeps all tutors' slots in memory. Safe for concurrent use.
type SlotStore struct {
	mu    sync.Mutex
	slots map[string]*domain.Slot // slot id -> slot
	seq   map[string]int64        // slot id -> insertion order, for stable ties
	next  int64
}

// NewSlotStore returns an empty SlotStore.
func NewSlotStore() *SlotStore {
	return &SlotStore{
		slots: make(map[string]*domain.Slot),
		seq:   make(map[string]int64),
	}
}

// Add stores the slot and assigns a fresh UUID id.
func (s *SlotStore) Add(ctx context.Context, slot *domain.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot.ID = uuid.NewString()
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}
	stored := *slot
	s.slots[stored.ID] = &stored
	s.seq[stored.ID] = s.next
	s.next++
	return nil
}

// Remove deletes the slot unless it is missing or booked. Booked slots stay
// present and booked; the miss is not an error.
func (s *SlotStore) Remove(ctx context.Context, tutorID, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok || slot.TutorID != tutorID || slot.Booked {
		return nil
	}
	delete(s.slots, slotID)
	delete(s.seq, slotID)
	return nil
}

func (s *SlotStore) GetByID(ctx context.Context, tutorID, slotID string) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok || slot.TutorID != tutorID {
		return nil, domain.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

// ListOpen returns the tutor's unbooked slots ordered by (date, start), ties
// broken by insertion order.
func (s *SlotStore) ListOpen(ctx context.Context, tutorID string) ([]*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Slot{}
	for _, slot := range s.slots {
		if slot.TutorID != tutorID || slot.Booked {
			continue
		}
		copied := *slot
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return s.seq[out[i].ID] < s.seq[out[j].ID]
	})
	return out, nil
}

// Claim flips Booked false -> true under the store mutex. Exactly one of any
// set of concurrent claims on the same id succeeds; the flag never reverts.
func (s *SlotStore) Claim(ctx context.Context, tutorID, slotID string) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok || slot.TutorID != tutorID {
		return nil, domain.ErrSlotNotFound
	}
	if slot.Booked {
		return nil, domain.ErrSlotAlreadyBooked
	}
	slot.Booked = true
	copied := *slot
	return &copied, nil
}
