package render

import (
	"strings"

	"github.com/myrcvr/onboardmail/pkg/onboarding"
)

// Text renders doc as plain text. Links are written as "text <url>" and
// images as their alt text followed by the image URL.
func Text(doc onboarding.Document, opts ...Option) string {
	cfg := newConfig(opts)
	var sb strings.Builder
	for _, b := range doc.Blocks {
		switch b.Kind {
		case onboarding.KindParagraph, onboarding.KindLabel, onboarding.KindPlaceholder:
			for _, s := range b.Spans {
				sb.WriteString(spanText(s))
			}
			sb.WriteByte('\n')
		case onboarding.KindBreak:
			sb.WriteByte('\n')
		case onboarding.KindList:
			for _, item := range b.Items {
				sb.WriteString("  - " + spanText(item) + "\n")
			}
		case onboarding.KindImage:
			if b.Image == nil {
				continue
			}
			if b.Image.Caption != "" {
				sb.WriteString(b.Image.Caption + "\n")
			}
			sb.WriteString("[" + b.Image.Alt + "] " + cfg.assetURL(b.Image.Asset) + "\n")
		}
	}
	return sb.String()
}

func spanText(s onboarding.Span) string {
	if s.Href != "" {
		return s.Text + " <" + s.Href + ">"
	}
	return s.Text
}
