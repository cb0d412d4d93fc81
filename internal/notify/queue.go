package notify

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Message kinds double as routing-key suffixes on the AMQP queue.
const (
	KindReservation = "reservation"
	KindReminder    = "reminder"
	KindFeedback    = "feedback"
)

type Message struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	To      []string `json:"to"`
}

// Queue hands mail off for asynchronous delivery. The producer's contract
// ends at a successful enqueue; delivery success is never observed.
type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}

// ======================================================
// In-process queue (buffered channel + worker pool)
// ======================================================

type ChanQueue struct {
	mailer Mailer
	queue  chan Message
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewChanQueue(mailer Mailer, workers int) *ChanQueue {
	if workers < 1 {
		workers = 1
	}

	q := &ChanQueue{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

func (q *ChanQueue) worker() {
	defer q.wg.Done()
	for msg := range q.queue {
		if err := q.mailer.Send(msg.Subject, msg.Body, msg.To); err != nil {
			log.WithError(err).WithField("mail_id", msg.ID).Error("mail delivery failed")
		}
	}
}

// Enqueue never blocks a request handler. A full queue drops the message,
// and so does a queue that has already been closed.
func (q *ChanQueue) Enqueue(_ context.Context, msg Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		log.WithField("mail_id", msg.ID).Warn("mail queue closed, dropping message")
		return nil
	}

	select {
	case q.queue <- msg:
	default:
		log.WithField("mail_id", msg.ID).Warn("mail queue full, dropping message")
	}
	return nil
}

// Close stops accepting messages and waits for in-flight deliveries.
func (q *ChanQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.queue)
	q.mu.Unlock()

	q.wg.Wait()
}
