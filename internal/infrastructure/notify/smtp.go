package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/fixpoint/repairdesk/internal/core/ports"
	"github.com/fixpoint/repairdesk/internal/pkg/config"
)

// SMTPSender delivers email notifications through a plain SMTP relay.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	s := &SMTPSender{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
	}
	if cfg.Username != "" {
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return s
}

func (s *SMTPSender) Send(_ context.Context, n ports.Notification) error {
	if n.Channel != ports.ChannelEmail {
		return fmt.Errorf("smtp sender: unsupported channel %q", n.Channel)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.from, n.To, n.Subject, n.Body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{n.To}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp sender: %w", err)
	}
	return nil
}
