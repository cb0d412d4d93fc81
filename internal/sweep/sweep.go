package sweep

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
	"github.com/Lex0104/Saphir/internal/notify"
)

// ExpiryGrace is how far past its start time an unclaimed reservation may sit
// before it is deactivated.
const ExpiryGrace = 30 * time.Minute

// Sweeper implements the two periodic jobs over today's reservations: expiry
// of overdue ones and once-only reminders. Both are idempotent per
// reservation and safe to re-run.
type Sweeper struct {
	repo  domain.Repository
	queue notify.Queue
	loc   *time.Location

	// now is swappable in tests
	now func() time.Time
}

func NewSweeper(repo domain.Repository, queue notify.Queue, loc *time.Location) *Sweeper {
	return &Sweeper{
		repo:  repo,
		queue: queue,
		loc:   loc,
		now:   func() time.Time { return time.Now().In(loc) },
	}
}

// ExpireOverdue deactivates every active reservation dated today whose local
// start time is more than ExpiryGrace in the past. Already-inactive rows are
// never touched, so repeated runs are harmless.
func (s *Sweeper) ExpireOverdue(ctx context.Context) (int, error) {
	now := s.now()
	today := now.Format(models.DateLayout)

	reservations, err := s.repo.ListActiveForDate(ctx, today)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range reservations {
		res := &reservations[i]

		startsAt := res.StartsAt(s.loc)
		if startsAt.IsZero() {
			log.WithField("reservation_id", res.ID).Warn("sweep: unparsable date/time, skipping")
			continue
		}

		if now.Sub(startsAt) <= ExpiryGrace {
			continue
		}

		res.IsActive = false
		if err := s.repo.SaveReservation(ctx, res); err != nil {
			log.WithError(err).WithField("reservation_id", res.ID).Error("sweep: failed to expire")
			continue
		}
		expired++
	}

	return expired, nil
}

// SendReminders mails the owner of every active, not-yet-reminded reservation
// dated today. The reminder_sent flag is persisted immediately after each
// individual enqueue, guaranteeing at most one reminder per reservation even
// when sweeps overlap.
func (s *Sweeper) SendReminders(ctx context.Context) (int, error) {
	today := s.now().Format(models.DateLayout)

	reservations, err := s.repo.ListDueReminders(ctx, today)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range reservations {
		res := &reservations[i]

		if res.Owner == nil || res.Owner.Email == "" {
			continue
		}

		subject, body := notify.BuildReminderMail(res)
		msg := notify.Message{
			ID:      uuid.NewString(),
			Kind:    notify.KindReminder,
			Subject: subject,
			Body:    body,
			To:      []string{res.Owner.Email},
		}

		if err := s.queue.Enqueue(ctx, msg); err != nil {
			// flag stays unset; the next sweep retries this reservation
			log.WithError(err).WithField("reservation_id", res.ID).Error("sweep: failed to enqueue reminder")
			continue
		}

		res.ReminderSent = true
		if err := s.repo.SaveReservation(ctx, res); err != nil {
			log.WithError(err).WithField("reservation_id", res.ID).Error("sweep: failed to mark reminder sent")
			continue
		}
		sent++
	}

	return sent, nil
}
