package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Mailer interface {
	Send(subject, body string, to []string) error
}

// LogMailer writes mail to the application log. Used in development and as a
// fallback when no SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) Send(subject, body string, to []string) error {
	log.WithField("to", strings.Join(to, ", ")).Infof("[mail] %s :: %s", subject, body)
	return nil
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Addr string
	From string
}

func (m SMTPMailer) Send(subject, body string, to []string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.From, strings.Join(to, ", "), subject, body,
	)
	return smtp.SendMail(m.Addr, nil, m.From, to, []byte(msg))
}
