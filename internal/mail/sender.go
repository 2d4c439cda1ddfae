package mail

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"dialedbyh/internal/config"
)

// Sender delivers one HTML notification. Callers treat failures as
// best-effort: the returned id identifies the message when delivery worked.
type Sender interface {
	Send(to, subject, html string) (id string, err error)
}

// SMTPSender sends through the configured SMTP relay.
type SMTPSender struct {
	cfg config.Config
}

func NewSMTPSender(cfg config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, html string) (string, error) {
	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.SMTPHost)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", id)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("sending notification: %w", err)
	}
	return id, nil
}
