package render

import (
	"context"

	"github.com/myrcvr/onboardmail/pkg/onboarding"
)

// Payload is the rich-text content placed on the clipboard or delivered by email.
type Payload struct {
	Subject string `json:"subject" yaml:"subject"`
	HTML    string `json:"html" yaml:"html"`
	Text    string `json:"text" yaml:"text"`
}

// NewPayload assembles sel and renders both representations.
func NewPayload(ctx context.Context, sel onboarding.Selection, opts ...Option) (Payload, error) {
	doc := onboarding.Assemble(sel)
	html, err := HTML(ctx, doc, opts...)
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		Subject: onboarding.Subject(sel),
		HTML:    html,
		Text:    Text(doc, opts...),
	}, nil
}

// Writer places a rendered payload somewhere the operator can send it from:
// the system clipboard, an inbox, a file.
type Writer interface {
	WriteRichText(ctx context.Context, p Payload) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, p Payload) error

func (f WriterFunc) WriteRichText(ctx context.Context, p Payload) error {
	return f(ctx, p)
}
