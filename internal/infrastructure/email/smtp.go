package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/emrebktas/modpack-assistant/config"
)

// SMTPSender is the alternate delivery backend for deployments without a
// SendGrid account. net/smtp is used directly: the pack carries no mail
// library and the protocol need here is a single authenticated DATA.
type SMTPSender struct {
	addr     string
	host     string
	username string
	password string
	from     string
	fromName string
}

func NewSMTPSender(cfg *config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		addr:     fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		host:     cfg.SMTP.Host,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.FromEmail,
		fromName: cfg.FromName,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.fromName, s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	if err := smtp.SendMail(s.addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
