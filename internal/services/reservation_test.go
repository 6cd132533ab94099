package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorly/internal/domain"
	"tutorly/internal/repository/memory"
)

// fakeEmailService records sent confirmations and can fail on demand.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.BookingConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeBookingRecorder counts metric calls.
type fakeBookingRecorder struct {
	mu        sync.Mutex
	bookings  int
	conflicts int
}

func (f *fakeBookingRecorder) RecordBooking() {
	f.mu.Lock()
	f.bookings++
	f.mu.Unlock()
}

func (f *fakeBookingRecorder) RecordBookingConflict() {
	f.mu.Lock()
	f.conflicts++
	f.mu.Unlock()
}

type reservationFixture struct {
	slots  *memory.SlotStore
	ledger *memory.SessionLedger
	users  *memory.UserRepository
	email  *fakeEmailService
	rec    *fakeBookingRecorder
	svc    domain.ReservationService

	student *domain.User
	tutor   *domain.User
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	f := &reservationFixture{
		slots:  memory.NewSlotStore(),
		ledger: memory.NewSessionLedger(),
		users:  memory.NewUserRepository(),
		email:  &fakeEmailService{},
		rec:    &fakeBookingRecorder{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewReservationService(f.slots, f.ledger, f.users, f.email, f.rec, logger)

	ctx := context.Background()
	f.student = domain.NewUser("alice@student.com", "Alice Chen", domain.RoleStudent, time.Now(), time.Now())
	require.NoError(t, f.users.Create(ctx, f.student))
	f.tutor = domain.NewUser("emily@tutor.com", "Emily Zhang", domain.RoleTutor, time.Now(), time.Now())
	f.tutor.Subject = "Mathematics"
	f.tutor.Status = domain.TutorStatusApproved
	require.NoError(t, f.users.Create(ctx, f.tutor))
	return f
}

func (f *reservationFixture) addSlot(t *testing.T, date, start, end string) *domain.Slot {
	t.Helper()
	slot := domain.NewSlot(f.tutor.ID, date, start, end, time.Now())
	require.NoError(t, f.slots.Add(context.Background(), slot))
	return slot
}

func TestReservationService_BookSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("books an open slot", func(t *testing.T) {
		f := newReservationFixture(t)
		slot := f.addSlot(t, "2025-09-07", "10:00", "11:00")

		session, err := f.svc.BookSlot(ctx, domain.BookSlotInput{
			StudentID: f.student.ID,
			TutorID:   f.tutor.ID,
			SlotID:    slot.ID,
			Remarks:   "need help with integrals",
		})
		require.NoError(t, err)
		require.NotEmpty(t, session.ID)
		assert.Equal(t, domain.SessionStatusUpcoming, session.Status)
		assert.Equal(t, "2025-09-07", session.Date)
		assert.Equal(t, "10:00", session.StartTime)
		assert.Equal(t, domain.DefaultSessionMinutes, session.DurationMinutes)
		assert.Equal(t, "Mathematics", session.Subject)
		assert.Equal(t, "Mathematics One-to-one", session.Topic)
		assert.Equal(t, "Alice Chen", session.StudentName)
		assert.Equal(t, "Emily Zhang", session.TutorName)
		assert.Equal(t, "need help with integrals", session.Remarks)

		// The slot left the open list.
		open, err := f.slots.ListOpen(ctx, f.tutor.ID)
		require.NoError(t, err)
		assert.Empty(t, open)

		// Exactly one ledger append and one confirmation email.
		sessions, err := f.ledger.FindByParticipant(ctx, f.student.ID)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		require.Len(t, f.email.sent, 1)
		assert.Equal(t, "alice@student.com", f.email.sent[0].Email)
		assert.Equal(t, 1, f.rec.bookings)
	})

	t.Run("second booking of the same slot conflicts", func(t *testing.T) {
		f := newReservationFixture(t)
		slot := f.addSlot(t, "2025-09-07", "10:00", "11:00")

		other := domain.NewUser("bob@student.com", "Bob", domain.RoleStudent, time.Now(), time.Now())
		require.NoError(t, f.users.Create(ctx, other))

		_, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.tutor.ID, SlotID: slot.ID})
		require.NoError(t, err)

		_, err = f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: other.ID, TutorID: f.tutor.ID, SlotID: slot.ID})
		require.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
		assert.Equal(t, 1, f.rec.conflicts)

		// The ledger still has exactly one session for that slot.
		sessions, err := f.ledger.FindByParticipant(ctx, f.tutor.ID)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, f.student.ID, sessions[0].StudentID)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newReservationFixture(t)
		_, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.tutor.ID, SlotID: "missing"})
		require.ErrorIs(t, err, domain.ErrSlotNotFound)
		assert.Empty(t, f.email.sent)
	})

	t.Run("unknown student leaves the slot open", func(t *testing.T) {
		f := newReservationFixture(t)
		slot := f.addSlot(t, "2025-09-07", "10:00", "11:00")

		_, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: "missing", TutorID: f.tutor.ID, SlotID: slot.ID})
		require.ErrorIs(t, err, domain.ErrUserNotFound)

		open, err := f.slots.ListOpen(ctx, f.tutor.ID)
		require.NoError(t, err)
		assert.Len(t, open, 1)
	})

	t.Run("booking a non-tutor is rejected", func(t *testing.T) {
		f := newReservationFixture(t)
		_, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.student.ID, SlotID: "whatever"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("email failure does not fail the booking", func(t *testing.T) {
		f := newReservationFixture(t)
		f.email.err = errors.New("ses unavailable")
		slot := f.addSlot(t, "2025-09-07", "10:00", "11:00")

		session, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.tutor.ID, SlotID: slot.ID})
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusUpcoming, session.Status)
	})
}

func TestReservationService_BookSlot_ConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	f := newReservationFixture(t)
	slot := f.addSlot(t, "2025-09-07", "10:00", "11:00")

	const students = 16
	ids := make([]string, students)
	for i := 0; i < students; i++ {
		u := domain.NewUser(string(rune('a'+i))+"@student.com", "Student", domain.RoleStudent, time.Now(), time.Now())
		require.NoError(t, f.users.Create(ctx, u))
		ids[i] = u.ID
	}

	var wg sync.WaitGroup
	errs := make([]error, students)
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: ids[i], TutorID: f.tutor.ID, SlotID: slot.ID})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
		}
	}
	assert.Equal(t, 1, wins)

	sessions, err := f.ledger.FindByParticipant(ctx, f.tutor.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestReservationService_CompleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("completes an upcoming session once", func(t *testing.T) {
		f := newReservationFixture(t)
		slot := f.addSlot(t, "2025-09-07", "10:00", "11:00")
		session, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.tutor.ID, SlotID: slot.ID})
		require.NoError(t, err)

		done, err := f.svc.CompleteSession(ctx, session.ID, f.tutor.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusCompleted, done.Status)

		// Repeat call: completed is terminal.
		_, err = f.svc.CompleteSession(ctx, session.ID, f.tutor.ID)
		require.ErrorIs(t, err, domain.ErrInvalidTransition)

		got, err := f.svc.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusCompleted, got.Status)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newReservationFixture(t)
		_, err := f.svc.CompleteSession(ctx, "missing", f.tutor.ID)
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("non-participant is rejected", func(t *testing.T) {
		f := newReservationFixture(t)
		slot := f.addSlot(t, "2025-09-07", "10:00", "11:00")
		session, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.tutor.ID, SlotID: slot.ID})
		require.NoError(t, err)

		_, err = f.svc.CompleteSession(ctx, session.ID, "stranger")
		require.ErrorIs(t, err, domain.ErrForbidden)

		got, err := f.svc.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusUpcoming, got.Status)
	})
}

func TestReservationService_ListSessionsByParticipant(t *testing.T) {
	ctx := context.Background()
	f := newReservationFixture(t)
	first := f.addSlot(t, "2025-09-07", "10:00", "11:00")
	second := f.addSlot(t, "2025-09-08", "14:00", "15:00")

	s1, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.tutor.ID, SlotID: first.ID})
	require.NoError(t, err)
	s2, err := f.svc.BookSlot(ctx, domain.BookSlotInput{StudentID: f.student.ID, TutorID: f.tutor.ID, SlotID: second.ID})
	require.NoError(t, err)

	mine, err := f.svc.ListSessionsByParticipant(ctx, f.student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, s1.ID, mine[0].ID)
	assert.Equal(t, s2.ID, mine[1].ID)

	tutors, err := f.svc.ListSessionsByParticipant(ctx, f.tutor.ID)
	require.NoError(t, err)
	assert.Len(t, tutors, 2)
}
