package domain

import (
	"context"
	"time"
)

// Role codes. A user has exactly one role, assigned at signup.
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// TutorStatus is the moderation state of a tutor profile. Only approved tutors
// appear in the directory and can receive bookings.
type TutorStatus string

const (
	TutorStatusPending  TutorStatus = "pending"
	TutorStatusApproved TutorStatus = "approved"
	TutorStatusRejected TutorStatus = "rejected"
)

// User represents a registered user. Tutor-only fields are zero-valued for
// students and admins.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`

	// Tutor profile fields.
	Subject      string      `json:"subject,omitempty"`
	Subjects     []string    `json:"subjects,omitempty"`
	PricePerHour int         `json:"price_per_hour,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	Status       TutorStatus `json:"status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(email, name, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// IsTutor reports whether the user holds the tutor role.
func (u *User) IsTutor() bool { return u.Role == RoleTutor }

// UserRepository defines storage operations for users and tutor profiles.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// GetByEmail returns ErrUserNotFound on a miss.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// ListTutors returns tutors with the given status, newest first.
	ListTutors(ctx context.Context, status TutorStatus) ([]*User, error)
	// UpdateTutorStatus returns ErrUserNotFound if id is unknown or not a tutor.
	UpdateTutorStatus(ctx context.Context, tutorID string, status TutorStatus) (*User, error)
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues bearer tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a bearer token and returns the user id and role.
type TokenVerifier interface {
	Verify(token string) (userID, role string, err error)
}

// AuthService defines signup and login.
type AuthService interface {
	// SignUp creates a user. Tutors start in TutorStatusPending.
	SignUp(ctx context.Context, in SignUpInput) (*User, error)
	// Login returns a signed token and the user on valid credentials.
	Login(ctx context.Context, email, password string) (string, *User, error)
}

// SignUpInput carries signup fields; tutor fields are ignored for other roles.
type SignUpInput struct {
	Email        string
	Password     string
	Name         string
	Role         string
	Subject      string
	Subjects     []string
	PricePerHour int
	Bio          string
}

// TutorService exposes the tutor directory and admin moderation.
type TutorService interface {
	// ListApprovedTutors returns the public directory.
	ListApprovedTutors(ctx context.Context) ([]*User, error)
	// GetTutorProfile returns an approved tutor together with their open slots.
	GetTutorProfile(ctx context.Context, tutorID string) (*User, []*Slot, error)
	// SetTutorStatus applies an admin moderation decision (approved or rejected).
	SetTutorStatus(ctx context.Context, tutorID string, status TutorStatus) (*User, error)
}
