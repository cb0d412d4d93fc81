package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Lex0104/Saphir/internal/config"
	"github.com/Lex0104/Saphir/internal/httperr"
	"github.com/Lex0104/Saphir/internal/notify"
)

// FeedbackHandler takes the home-page contact form and queues it as mail to
// the feedback address. Fire-and-forget, same as reservation notifications.
type FeedbackHandler struct {
	cfg   *config.Config
	queue notify.Queue
}

func NewFeedbackHandler(cfg *config.Config, queue notify.Queue) *FeedbackHandler {
	return &FeedbackHandler{cfg: cfg, queue: queue}
}

type FeedbackRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *FeedbackHandler) Send(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and message are required.")
		return
	}

	subject, body := notify.BuildFeedbackMail(req.Email, req.Message)

	_ = h.queue.Enqueue(c.Request.Context(), notify.Message{
		ID:      uuid.NewString(),
		Kind:    notify.KindFeedback,
		Subject: subject,
		Body:    body,
		To:      []string{h.cfg.MailFeedback},
	})

	c.JSON(200, gin.H{"message_sent": true})
}
