package render

import (
	"context"
	"errors"
	"strings"

	"github.com/a-h/templ"

	"github.com/myrcvr/onboardmail/pkg/markup"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
)

// Inline styles. Email clients drop stylesheets, so everything is inlined.
const (
	bodyStyle        = "font-family: Arial, sans-serif; font-size: 14px; line-height: 1.5; color: #000;"
	linkStyle        = "color: #2563eb; text-decoration: underline;"
	labelStyle       = "margin: 0 0 4px 0;"
	listStyle        = "margin: 4px 0 16px 0; padding-left: 24px;"
	itemStyle        = "margin-bottom: 4px;"
	figureStyle      = "margin-bottom: 16px;"
	imageStyle       = "max-width: 100%; height: auto; border: 1px solid #ccc; margin-top: 8px;"
	placeholderStyle = "color: #888; font-style: italic;"
)

// Email renders doc as an inline-styled HTML fragment.
func Email(doc onboarding.Document, opts ...Option) templ.Component {
	cfg := newConfig(opts)
	return markup.Component(func(_ context.Context, w *markup.Writer) {
		w.Raw(`<div style="` + bodyStyle + `">`)
		for _, b := range doc.Blocks {
			writeBlock(w, b, cfg)
		}
		w.Raw(`</div>`)
	})
}

// HTML renders doc to a string.
func HTML(ctx context.Context, doc onboarding.Document, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Email(doc, opts...).Render(ctx, &sb); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return sb.String(), nil
}

func writeBlock(w *markup.Writer, b onboarding.Block, cfg *config) {
	switch b.Kind {
	case onboarding.KindParagraph:
		w.Raw("<p>")
		for _, s := range b.Spans {
			writeSpan(w, s)
		}
		w.Raw("</p>")
	case onboarding.KindBreak:
		w.Raw("<br>")
	case onboarding.KindLabel:
		w.Raw(`<p style="` + labelStyle + `"><strong>`)
		w.Text(b.PlainText())
		w.Raw("</strong></p>")
	case onboarding.KindList:
		w.Raw(`<ul style="` + listStyle + `">`)
		for _, item := range b.Items {
			w.Raw(`<li style="` + itemStyle + `">`)
			writeSpan(w, item)
			w.Raw("</li>")
		}
		w.Raw("</ul>")
	case onboarding.KindImage:
		if b.Image == nil {
			return
		}
		w.Raw(`<p style="` + figureStyle + `">`)
		if b.Image.Caption != "" {
			w.Raw("<strong>")
			w.Text(b.Image.Caption)
			w.Raw("</strong><br>")
		}
		w.Raw("<img")
		w.URLAttr("src", cfg.assetURL(b.Image.Asset))
		w.Attr("alt", b.Image.Alt)
		w.Raw(` style="` + imageStyle + `"></p>`)
	case onboarding.KindPlaceholder:
		w.Raw(`<p style="` + placeholderStyle + `">`)
		w.Text(b.PlainText())
		w.Raw("</p>")
	}
}

func writeSpan(w *markup.Writer, s onboarding.Span) {
	if s.Href != "" {
		w.Raw("<a")
		w.URLAttr("href", s.Href)
		w.Raw(` target="_blank" rel="noopener noreferrer" style="` + linkStyle + `">`)
	}
	if s.Bold {
		w.Raw("<strong>")
	}
	w.Text(s.Text)
	if s.Bold {
		w.Raw("</strong>")
	}
	if s.Href != "" {
		w.Raw("</a>")
	}
}
