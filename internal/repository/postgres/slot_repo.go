package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tutorly/internal/domain"
)

type slotRepository struct {
	DB *sql.DB
}

// NewSlotRepository returns a domain.SlotStore backed by Postgres.
func NewSlotRepository(db *sql.DB) domain.SlotStore {
	return &slotRepository{DB: db}
}

func (r *slotRepository) Add(ctx context.Context, slot *domain.Slot) error {
	query := `
		INSERT INTO slots (tutor_id, date, start_time, end_time, booked, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, slot.TutorID, slot.Date, slot.Start, slot.End, slot.CreatedAt).Scan(&slot.ID)
}

// Remove deletes the slot only while it is unbooked. A miss (unknown id, wrong
// tutor, or already booked) deletes nothing and is not an error.
func (r *slotRepository) Remove(ctx context.Context, tutorID, slotID string) error {
	query := `DELETE FROM slots WHERE id = $1 AND tutor_id = $2 AND booked = FALSE`
	_, err := r.DB.ExecContext(ctx, query, slotID, tutorID)
	return err
}

func (r *slotRepository) GetByID(ctx context.Context, tutorID, slotID string) (*domain.Slot, error) {
	query := `
		SELECT id, tutor_id, date, start_time, end_time, booked, created_at
		FROM slots
		WHERE id = $1 AND tutor_id = $2
	`
	slot := &domain.Slot{}
	err := r.DB.QueryRowContext(ctx, query, slotID, tutorID).
		Scan(&slot.ID, &slot.TutorID, &slot.Date, &slot.Start, &slot.End, &slot.Booked, &slot.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (r *slotRepository) ListOpen(ctx context.Context, tutorID string) ([]*domain.Slot, error) {
	query := `
		SELECT id, tutor_id, date, start_time, end_time, booked, created_at
		FROM slots
		WHERE tutor_id = $1 AND booked = FALSE
		ORDER BY date, start_time, seq
	`
	rows, err := r.DB.QueryContext(ctx, query, tutorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []*domain.Slot{}
	for rows.Next() {
		slot := &domain.Slot{}
		if err := rows.Scan(&slot.ID, &slot.TutorID, &slot.Date, &slot.Start, &slot.End, &slot.Booked, &slot.CreatedAt); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// Claim sets booked = TRUE only if it is still FALSE; the conditional UPDATE is
// the atomic check-then-set. Zero rows means either a miss or a lost race, so a
// follow-up read picks the right error.
func (r *slotRepository) Claim(ctx context.Context, tutorID, slotID string) (*domain.Slot, error) {
	query := `
		UPDATE slots
		SET booked = TRUE
		WHERE id = $1 AND tutor_id = $2 AND booked = FALSE
		RETURNING id, tutor_id, date, start_time, end_time, booked, created_at
	`
	slot := &domain.Slot{}
	err := r.DB.QueryRowContext(ctx, query, slotID, tutorID).
		Scan(&slot.ID, &slot.TutorID, &slot.Date, &slot.Start, &slot.End, &slot.Booked, &slot.CreatedAt)
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := r.GetByID(ctx, tutorID, slotID); err != nil {
		return nil, err
	}
	return nil, domain.ErrSlotAlreadyBooked
}
