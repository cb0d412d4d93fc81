package sweep

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Scheduler drives the sweeper on fixed intervals until the context ends.
type Scheduler struct {
	Sweeper *Sweeper

	ExpiryInterval   time.Duration
	ReminderInterval time.Duration
}

func NewScheduler(sweeper *Sweeper) *Scheduler {
	return &Scheduler{
		Sweeper:          sweeper,
		ExpiryInterval:   time.Minute,
		ReminderInterval: 10 * time.Minute,
	}
}

func (s *Scheduler) Run(ctx context.Context) error {
	expiry := time.NewTicker(s.ExpiryInterval)
	defer expiry.Stop()
	reminder := time.NewTicker(s.ReminderInterval)
	defer reminder.Stop()

	// kick immediately
	s.tickExpiry(ctx)
	s.tickReminder(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-expiry.C:
			s.tickExpiry(ctx)
		case <-reminder.C:
			s.tickReminder(ctx)
		}
	}
}

func (s *Scheduler) tickExpiry(ctx context.Context) {
	n, err := s.Sweeper.ExpireOverdue(ctx)
	if err != nil {
		log.WithError(err).Error("expiry sweep failed")
		return
	}
	if n > 0 {
		log.WithField("expired", n).Info("expiry sweep done")
	}
}

func (s *Scheduler) tickReminder(ctx context.Context) {
	n, err := s.Sweeper.SendReminders(ctx)
	if err != nil {
		log.WithError(err).Error("reminder sweep failed")
		return
	}
	if n > 0 {
		log.WithField("sent", n).Info("reminder sweep done")
	}
}
