package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"
)

// Dialer sends composed messages. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpSender struct {
	dialer  Dialer
	from    string
	replyTo string
}

// NewSMTPSender creates a sender that relays through cfg.SMTPHost.
func NewSMTPSender(cfg Config) (EmailSender, error) {
	if cfg.SMTPHost == "" || cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("%w: smtp host and port are required", ErrInvalidConfig)
	}
	if cfg.Sender == "" {
		return nil, fmt.Errorf("%w: sender is required", ErrInvalidConfig)
	}
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.Timeout = 10 * time.Second
	return NewSMTPSenderWithDialer(d, cfg.Sender, cfg.ReplyTo), nil
}

// NewSMTPSenderWithDialer creates an SMTP sender over an existing Dialer.
func NewSMTPSenderWithDialer(d Dialer, from, replyTo string) EmailSender {
	return &smtpSender{dialer: d, from: from, replyTo: replyTo}
}

// SendEmail sends text/plain with a text/html alternative when both bodies
// are present.
func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", params.SendTo)
	m.SetHeader("Subject", params.Subject)
	if s.replyTo != "" {
		m.SetHeader("Reply-To", s.replyTo)
	}

	switch {
	case params.BodyHTML != "" && params.BodyText != "":
		m.SetBody("text/plain", params.BodyText)
		m.AddAlternative("text/html", params.BodyHTML)
	case params.BodyHTML != "":
		m.SetBody("text/html", params.BodyHTML)
	default:
		m.SetBody("text/plain", params.BodyText)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
