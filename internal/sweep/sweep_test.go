package sweep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
	"github.com/Lex0104/Saphir/internal/notify"
)

// ======================================================
// Fakes
// ======================================================

type memRepo struct {
	reservations map[uint]*models.Reservation
}

func newMemRepo(items ...*models.Reservation) *memRepo {
	r := &memRepo{reservations: make(map[uint]*models.Reservation)}
	for _, res := range items {
		cp := *res
		r.reservations[res.ID] = &cp
	}
	return r
}

func (r *memRepo) GetTable(context.Context, uint) (*models.Table, error)  { return nil, nil }
func (r *memRepo) ListTables(context.Context) ([]models.Table, error)    { return nil, nil }
func (r *memRepo) CreateReservation(context.Context, *models.Reservation) error { return nil }

func (r *memRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (r *memRepo) SaveReservation(_ context.Context, res *models.Reservation) error {
	cp := *res
	r.reservations[res.ID] = &cp
	return nil
}

func (r *memRepo) DeleteReservation(_ context.Context, res *models.Reservation) error {
	delete(r.reservations, res.ID)
	return nil
}

func (r *memRepo) ReservedTimes(context.Context, uint, string) ([]string, error) { return nil, nil }

func (r *memRepo) AssertSlotFree(context.Context, *models.Table, string, string, uint) error {
	return nil
}

func (r *memRepo) ListActive(context.Context, domain.ListFilter) ([]models.Reservation, int64, error) {
	return nil, 0, nil
}

func (r *memRepo) ListForOwner(context.Context, uint) ([]models.Reservation, error) {
	return nil, nil
}

func (r *memRepo) ListActiveForDate(_ context.Context, date string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.IsActive && res.Date == date {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *memRepo) ListDueReminders(_ context.Context, date string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.IsActive && !res.ReminderSent && res.Date == date {
			out = append(out, *res)
		}
	}
	return out, nil
}

var _ domain.Repository = (*memRepo)(nil)

type recordingQueue struct {
	messages []notify.Message
}

func (q *recordingQueue) Enqueue(_ context.Context, msg notify.Message) error {
	q.messages = append(q.messages, msg)
	return nil
}

// ======================================================
// Helpers
// ======================================================

var sweepNow = time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)

func newTestSweeper(repo *memRepo, queue *recordingQueue) *Sweeper {
	s := NewSweeper(repo, queue, time.UTC)
	s.now = func() time.Time { return sweepNow }
	return s
}

func reservationAt(id uint, date, clock string) *models.Reservation {
	owner := &models.User{ID: id, Name: "Guest", Email: "guest@example.com"}
	tableID := uint(1)
	return &models.Reservation{
		ID:       id,
		Date:     date,
		Time:     clock,
		OwnerID:  &owner.ID,
		Owner:    owner,
		TableID:  &tableID,
		Table:    &models.Table{ID: 1, Number: 1, Seats: 2},
		IsActive: true,
	}
}

// ======================================================
// Expiry
// ======================================================

func TestExpireOverdue(t *testing.T) {
	repo := newMemRepo(
		reservationAt(1, "2025-07-01", "12:00"), // 2h past, expires
		reservationAt(2, "2025-07-01", "13:45"), // 15min past, inside grace
		reservationAt(3, "2025-07-01", "18:00"), // upcoming
		reservationAt(4, "2025-07-02", "12:00"), // tomorrow
	)
	s := newTestSweeper(repo, &recordingQueue{})

	expired, err := s.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	assert.False(t, repo.reservations[1].IsActive)
	assert.True(t, repo.reservations[2].IsActive)
	assert.True(t, repo.reservations[3].IsActive)
	assert.True(t, repo.reservations[4].IsActive)
}

func TestExpireOverdueGraceBoundary(t *testing.T) {
	// exactly 30 minutes past start is still within grace
	repo := newMemRepo(reservationAt(1, "2025-07-01", "13:30"))
	s := newTestSweeper(repo, &recordingQueue{})

	expired, err := s.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, expired)
	assert.True(t, repo.reservations[1].IsActive)
}

func TestExpireOverdueIdempotent(t *testing.T) {
	repo := newMemRepo(reservationAt(1, "2025-07-01", "10:00"))
	s := newTestSweeper(repo, &recordingQueue{})

	expired, err := s.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	expired, err = s.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, expired)
}

func TestExpireSkipsUnparsable(t *testing.T) {
	broken := reservationAt(1, "2025-07-01", "noon")
	repo := newMemRepo(broken, reservationAt(2, "2025-07-01", "10:00"))
	s := newTestSweeper(repo, &recordingQueue{})

	expired, err := s.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.True(t, repo.reservations[1].IsActive)
}

// ======================================================
// Reminders
// ======================================================

func TestSendReminders(t *testing.T) {
	repo := newMemRepo(
		reservationAt(1, "2025-07-01", "18:00"),
		reservationAt(2, "2025-07-02", "18:00"), // not today
	)
	queue := &recordingQueue{}
	s := newTestSweeper(repo, queue)

	sent, err := s.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, queue.messages, 1)
	msg := queue.messages[0]
	assert.Equal(t, notify.KindReminder, msg.Kind)
	assert.Equal(t, []string{"guest@example.com"}, msg.To)
	assert.Contains(t, msg.Subject, "RESERVED")
	assert.Contains(t, msg.Body, "table #1")

	assert.True(t, repo.reservations[1].ReminderSent)
	assert.False(t, repo.reservations[2].ReminderSent)
}

func TestSendRemindersAtMostOnce(t *testing.T) {
	repo := newMemRepo(reservationAt(1, "2025-07-01", "18:00"))
	queue := &recordingQueue{}
	s := newTestSweeper(repo, queue)

	sent, err := s.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = s.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	assert.Len(t, queue.messages, 1)
}

func TestSendRemindersSkipsOwnerless(t *testing.T) {
	orphan := reservationAt(1, "2025-07-01", "18:00")
	orphan.Owner = nil
	orphan.OwnerID = nil
	repo := newMemRepo(orphan)
	queue := &recordingQueue{}
	s := newTestSweeper(repo, queue)

	sent, err := s.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Empty(t, queue.messages)
}
