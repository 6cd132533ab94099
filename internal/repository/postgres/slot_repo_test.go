package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorly/internal/domain"
)

var slotCols = []string{"id", "tutor_id", "date", "start_time", "end_time", "booked", "created_at"}

func TestSlotRepository_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		slot    *domain.Slot
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			slot: &domain.Slot{
				TutorID:   "tutor-uuid-1",
				Date:      "2025-09-07",
				Start:     "10:00",
				End:       "11:00",
				CreatedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO slots \(tutor_id, date, start_time, end_time, booked, created_at\)`).
					WithArgs("tutor-uuid-1", "2025-09-07", "10:00", "11:00", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("slot-uuid-1"))
			},
			wantID: "slot-uuid-1",
		},
		{
			name: "db error",
			slot: &domain.Slot{TutorID: "tutor-1", Date: "2025-09-07", Start: "10:00", End: "11:00", CreatedAt: time.Now()},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO slots`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSlotRepository(db)
			err = repo.Add(ctx, tt.slot)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.slot.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSlotRepository_Claim(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "wins the claim",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE slots\s+SET booked = TRUE\s+WHERE id = \$1 AND tutor_id = \$2 AND booked = FALSE`).
					WithArgs("slot-1", "tutor-1").
					WillReturnRows(sqlmock.NewRows(slotCols).
						AddRow("slot-1", "tutor-1", "2025-09-07", "10:00", "11:00", true, created))
			},
		},
		{
			name: "already booked",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE slots`).
					WithArgs("slot-1", "tutor-1").
					WillReturnRows(sqlmock.NewRows(slotCols))
				// Follow-up read finds the slot, so the loss is a booking conflict.
				mock.ExpectQuery(`SELECT id, tutor_id, date, start_time, end_time, booked, created_at\s+FROM slots`).
					WithArgs("slot-1", "tutor-1").
					WillReturnRows(sqlmock.NewRows(slotCols).
						AddRow("slot-1", "tutor-1", "2025-09-07", "10:00", "11:00", true, created))
			},
			wantErr: domain.ErrSlotAlreadyBooked,
		},
		{
			name: "slot not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE slots`).
					WithArgs("slot-missing", "tutor-1").
					WillReturnRows(sqlmock.NewRows(slotCols))
				mock.ExpectQuery(`SELECT id, tutor_id, date, start_time, end_time, booked, created_at\s+FROM slots`).
					WithArgs("slot-missing", "tutor-1").
					WillReturnRows(sqlmock.NewRows(slotCols))
			},
			wantErr: domain.ErrSlotNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSlotRepository(db)
			slotID := "slot-1"
			if tt.wantErr == domain.ErrSlotNotFound {
				slotID = "slot-missing"
			}
			slot, err := repo.Claim(ctx, "tutor-1", slotID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, slot.Booked)
			assert.Equal(t, "2025-09-07", slot.Date)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSlotRepository_Remove(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The guard lives in the WHERE clause: booked rows match nothing.
	mock.ExpectExec(`DELETE FROM slots WHERE id = \$1 AND tutor_id = \$2 AND booked = FALSE`).
		WithArgs("slot-1", "tutor-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSlotRepository(db)
	require.NoError(t, repo.Remove(ctx, "tutor-1", "slot-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_ListOpen(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, tutor_id, date, start_time, end_time, booked, created_at\s+FROM slots\s+WHERE tutor_id = \$1 AND booked = FALSE`).
		WithArgs("tutor-1").
		WillReturnRows(sqlmock.NewRows(slotCols).
			AddRow("slot-1", "tutor-1", "2025-09-07", "09:00", "10:00", false, created).
			AddRow("slot-2", "tutor-1", "2025-09-07", "10:00", "11:00", false, created))

	repo := NewSlotRepository(db)
	slots, err := repo.ListOpen(ctx, "tutor-1")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "slot-1", slots[0].ID)
	assert.False(t, slots[0].Booked)
	require.NoError(t, mock.ExpectationsWereMet())
}
