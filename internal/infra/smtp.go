package infra

import (
	"fmt"
	"net/smtp"

	"jumbox/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for the order confirmation mail.
// Sending is best-effort: callers log failures and move on — a mail error
// never rolls back a committed checkout.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configured reports whether SMTP credentials were provided.
func (m *Mailer) Configured() bool { return m.host != "" && m.user != "" }

// SendConfirmacion sends a plain-text order confirmation.
func (m *Mailer) SendConfirmacion(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
