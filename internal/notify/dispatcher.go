package notify

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Lex0104/Saphir/internal/models"
)

// ===============================
// Reservation lifecycle actions
// ===============================

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Dispatcher turns reservation lifecycle events into queued mail addressed to
// the restaurant admin. Fire-and-forget: enqueue failures are logged, never
// propagated to the caller.
type Dispatcher struct {
	queue Queue
	admin string
}

func NewDispatcher(queue Queue, adminAddr string) *Dispatcher {
	return &Dispatcher{
		queue: queue,
		admin: adminAddr,
	}
}

// Dispatch enqueues a notification for action on res. When actor is supplied
// and is not the reservation's owner, nothing is sent: staff-initiated edits
// on behalf of a guest do not notify.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	res *models.Reservation,
	action Action,
	actor *models.User,
	baseURL string,
) {
	if actor != nil {
		if res.OwnerID == nil || *res.OwnerID != actor.ID {
			return
		}
	}

	subject, body := BuildReservationMail(res, action, baseURL)
	if subject == "" || body == "" {
		return
	}

	msg := Message{
		ID:      uuid.NewString(),
		Kind:    KindReservation,
		Subject: subject,
		Body:    body,
		To:      []string{d.admin},
	}

	if err := d.queue.Enqueue(ctx, msg); err != nil {
		log.WithError(err).WithField("reservation_id", res.ID).Error("failed to enqueue notification")
	}
}
