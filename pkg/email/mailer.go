package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// EmailSender sends a single message.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one message. BodyText is the plain-text
// alternative and may be empty.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidParams)
	}
	if _, err := mail.ParseAddress(p.SendTo); err != nil {
		return fmt.Errorf("%w: invalid recipient %q", ErrInvalidParams, p.SendTo)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" && strings.TrimSpace(p.BodyText) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidParams)
	}
	return nil
}

// New returns the sender for cfg.Provider.
func New(cfg Config) (EmailSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderDev:
		return NewDevSender(cfg.DevDir), nil
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderSMTP:
		return NewSMTPSender(cfg)
	default:
		return disabledSender{}, nil
	}
}

type disabledSender struct{}

func (disabledSender) SendEmail(context.Context, SendEmailParams) error { return ErrDisabled }
