package email

import (
	"context"
	"log/slog"

	"github.com/myrcvr/onboardmail/pkg/logger"
	"github.com/myrcvr/onboardmail/pkg/render"
	"github.com/myrcvr/onboardmail/pkg/sanitizer"
)

// Tag marks onboarding drafts in provider dashboards and dev file names.
const Tag = "onboarding-draft"

// Sink writes rendered payloads to a fixed recipient. It implements render.Writer.
type Sink struct {
	sender    EmailSender
	recipient string
	log       *slog.Logger
}

func NewSink(sender EmailSender, recipient string, log *slog.Logger) *Sink {
	if log == nil {
		log = slog.Default()
	}
	return &Sink{sender: sender, recipient: recipient, log: log}
}

func (s *Sink) WriteRichText(ctx context.Context, p render.Payload) error {
	err := s.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   s.recipient,
		Subject:  p.Subject,
		BodyHTML: p.HTML,
		BodyText: p.Text,
		Tag:      Tag,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "draft delivery failed",
			logger.Component("email_sink"),
			logger.Error(err),
		)
		return err
	}
	s.log.InfoContext(ctx, "draft delivered",
		logger.Component("email_sink"),
		slog.String("subject", p.Subject),
		slog.String("recipient", sanitizer.MaskEmail(s.recipient)),
	)
	return nil
}

var _ render.Writer = (*Sink)(nil)
