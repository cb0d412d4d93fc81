package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lex0104/Saphir/internal/models"
)

type recordingQueue struct {
	messages []Message
}

func (q *recordingQueue) Enqueue(_ context.Context, msg Message) error {
	q.messages = append(q.messages, msg)
	return nil
}

func sampleReservation() (*models.Reservation, *models.User) {
	owner := &models.User{ID: 1, Name: "Anna Petrova", Email: "anna@example.com"}
	ownerID := owner.ID
	tableID := uint(5)

	return &models.Reservation{
		ID:      42,
		Date:    "2025-07-01",
		Time:    "18:00",
		OwnerID: &ownerID,
		Owner:   owner,
		TableID: &tableID,
		Table:   &models.Table{ID: tableID, Number: 3, Seats: 4},
		Comment: "window seat please",
	}, owner
}

func TestDispatchEnqueuesForOwner(t *testing.T) {
	q := &recordingQueue{}
	d := NewDispatcher(q, "admin@saphir.example")
	res, owner := sampleReservation()

	d.Dispatch(context.Background(), res, ActionCreated, owner, "http://localhost:8080")

	assert.Len(t, q.messages, 1)
	msg := q.messages[0]
	assert.Equal(t, KindReservation, msg.Kind)
	assert.Equal(t, []string{"admin@saphir.example"}, msg.To)
	assert.NotEmpty(t, msg.ID)
	assert.Contains(t, msg.Body, "2025-07-01")
	assert.Contains(t, msg.Body, "18:00")
	assert.Contains(t, msg.Body, "Anna Petrova")
	assert.Contains(t, msg.Body, "Table #3")
	assert.Contains(t, msg.Body, "window seat please")
}

func TestDispatchSuppressedWhenActorIsNotOwner(t *testing.T) {
	q := &recordingQueue{}
	d := NewDispatcher(q, "admin@saphir.example")
	res, _ := sampleReservation()

	staff := &models.User{ID: 99, Email: "manager@saphir.example"}
	d.Dispatch(context.Background(), res, ActionUpdated, staff, "")

	assert.Empty(t, q.messages)
}

func TestDispatchWithoutActorNotifies(t *testing.T) {
	q := &recordingQueue{}
	d := NewDispatcher(q, "admin@saphir.example")
	res, _ := sampleReservation()

	d.Dispatch(context.Background(), res, ActionDeleted, nil, "")

	assert.Len(t, q.messages, 1)
}

func TestBuildReservationMailLinks(t *testing.T) {
	res, _ := sampleReservation()
	link := "http://localhost:8080/api/reservations/42"

	_, created := BuildReservationMail(res, ActionCreated, "http://localhost:8080")
	assert.Contains(t, created, link)

	_, updated := BuildReservationMail(res, ActionUpdated, "http://localhost:8080")
	assert.Contains(t, updated, link)

	_, deleted := BuildReservationMail(res, ActionDeleted, "http://localhost:8080")
	assert.NotContains(t, deleted, "Confirmation link")
}

func TestBuildReservationMailUnknownAction(t *testing.T) {
	res, _ := sampleReservation()
	subject, body := BuildReservationMail(res, Action("archived"), "")
	assert.Empty(t, subject)
	assert.Empty(t, body)
}

func TestBuildReminderMail(t *testing.T) {
	res, _ := sampleReservation()
	subject, body := BuildReminderMail(res)

	assert.NotEmpty(t, subject)
	assert.Contains(t, body, "Anna Petrova")
	assert.Contains(t, body, "table #3")
	assert.Contains(t, body, "2025-07-01")
	assert.Contains(t, body, "18:00")
}

func TestChanQueueDelivers(t *testing.T) {
	mailer := &recordingMailer{}
	q := NewChanQueue(mailer, 1)

	_ = q.Enqueue(context.Background(), Message{ID: "1", Subject: "s", Body: "b", To: []string{"a@b.c"}})
	q.Close()

	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, "s", mailer.sent[0].subject)
}

func TestChanQueueDropsAfterClose(t *testing.T) {
	mailer := &recordingMailer{}
	q := NewChanQueue(mailer, 1)
	q.Close()

	err := q.Enqueue(context.Background(), Message{ID: "1", Subject: "late", To: []string{"a@b.c"}})
	assert.NoError(t, err)
	assert.Empty(t, mailer.sent)

	// closing twice is a no-op
	q.Close()
}

type sentMail struct {
	subject string
	body    string
	to      []string
}

type recordingMailer struct {
	sent []sentMail
}

func (m *recordingMailer) Send(subject, body string, to []string) error {
	m.sent = append(m.sent, sentMail{subject: subject, body: body, to: to})
	return nil
}
