package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client  *postmark.Client
	from    string
	replyTo string
}

// NewPostmarkClient creates a Postmark-backed sender.
func NewPostmarkClient(cfg Config) (EmailSender, error) {
	if cfg.PostmarkServerToken == "" || cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: postmark server and account tokens are required", ErrInvalidConfig)
	}
	if cfg.Sender == "" {
		return nil, fmt.Errorf("%w: sender is required", ErrInvalidConfig)
	}
	return &postmarkClient{
		client:  postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:    cfg.Sender,
		replyTo: cfg.ReplyTo,
	}, nil
}

// SendEmail sends through Postmark with open tracking and HTML-only link tracking.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:       c.from,
		ReplyTo:    c.replyTo,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TextBody:   params.BodyText,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
