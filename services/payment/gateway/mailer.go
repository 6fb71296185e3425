package gateway

import (
	"gopkg.in/gomail.v2"

	"github.com/austcms/clubpay/internal/pkg/models"
)

// SMTPMailer sends notification emails over SMTP
type SMTPMailer struct {
	cfg    models.SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg models.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers a plain-text email
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
