package notify

import (
	"github.com/newsroom-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends one message to a batch of recipients
type Mailer interface {
	Send(subject, body, from string, to []string) error
}

// SMTPMailer delivers mail through a configured SMTP relay
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a mailer from configuration
func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers a single plain-text message to all recipients in one call
func (m *SMTPMailer) Send(subject, body, from string, to []string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
