package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tutorly/internal/domain"
)

// UserRepository is an in-memory domain.UserRepository. Safe for concurrent use.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

// NewUserRepository returns an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(u.Email)
	if _, ok := r.byEmail[email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	if u.CreatedAt.IsZero() {
		now := time.Now()
		u.CreatedAt = now
		u.UpdatedAt = now
	}
	stored := *u
	r.byID[stored.ID] = &stored
	r.byEmail[email] = &stored
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// ListTutors returns tutors with the given status, newest first.
func (r *UserRepository) ListTutors(ctx context.Context, status domain.TutorStatus) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.User{}
	for _, u := range r.byID {
		if u.Role == domain.RoleTutor && u.Status == status {
			copied := *u
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *UserRepository) UpdateTutorStatus(ctx context.Context, tutorID string, status domain.TutorStatus) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[tutorID]
	if !ok || u.Role != domain.RoleTutor {
		return nil, domain.ErrUserNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	copied := *u
	return &copied, nil
}
