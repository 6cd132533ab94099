package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tutorly/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository returns a domain.SessionLedger backed by Postgres.
func NewSessionRepository(db *sql.DB) domain.SessionLedger {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Append(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (id, student_id, tutor_id, subject, date, start_time, duration_minutes, status, topic, student_name, tutor_name, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.StudentID, s.TutorID, s.Subject, s.Date, s.StartTime,
		s.DurationMinutes, s.Status, s.Topic, s.StudentName, s.TutorName, s.Remarks, s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrDuplicateID
		}
		return err
	}
	return nil
}

const sessionColumns = `id, student_id, tutor_id, subject, date, start_time, duration_minutes, status, topic, student_name, tutor_name, remarks, created_at`

func scanSession(row interface{ Scan(...any) error }) (*domain.Session, error) {
	s := &domain.Session{}
	err := row.Scan(&s.ID, &s.StudentID, &s.TutorID, &s.Subject, &s.Date, &s.StartTime,
		&s.DurationMinutes, &s.Status, &s.Topic, &s.StudentName, &s.TutorName, &s.Remarks, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) FindByParticipant(ctx context.Context, userID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE student_id = $1 OR tutor_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, sessionID string, status domain.SessionStatus) (*domain.Session, error) {
	query := `
		UPDATE sessions
		SET status = $2
		WHERE id = $1
		RETURNING ` + sessionColumns + `
	`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, sessionID, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}
