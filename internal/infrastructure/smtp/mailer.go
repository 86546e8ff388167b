package smtp

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/go-bingo-api/internal/config"
)

// Mailer sends emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewMailer returns the SMTP-backed mailer when an SMTP host is configured,
// and a logging mailer otherwise. The logging mailer simulates delivery by
// writing the message to the log, which is how local development reads the
// magic link out.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return &logMailer{}
	}
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

type logMailer struct{}

func (l *logMailer) SendEmail(to, subject, body string) error {
	slog.Info("simulated email send", "to", to, "subject", subject, "body", body)
	return nil
}
