package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer emits HTML the way generated templ components do: static markup is
// written as is, dynamic values always pass through templ's escaping. The
// first write error is kept and every later call becomes a no-op.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted static markup.
func (mw *Writer) Raw(s string) {
	if mw.err != nil {
		return
	}
	_, mw.err = io.WriteString(mw.w, s)
}

// Text writes s escaped as element content.
func (mw *Writer) Text(s string) {
	mw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (mw *Writer) Attr(name, value string) {
	mw.Raw(" " + name + `="`)
	mw.Text(value)
	mw.Raw(`"`)
}

// URLAttr writes a URL attribute. Unsafe schemes such as javascript: are
// replaced by templ's failsafe URL.
func (mw *Writer) URLAttr(name, url string) {
	mw.Attr(name, string(templ.URL(url)))
}

// BoolAttr writes ` name` when on is set.
func (mw *Writer) BoolAttr(name string, on bool) {
	if on {
		mw.Raw(" " + name)
	}
}

// Component renders c in place.
func (mw *Writer) Component(ctx context.Context, c templ.Component) {
	if mw.err != nil || c == nil {
		return
	}
	mw.err = c.Render(ctx, mw.w)
}

// Fail records err unless an earlier error is already kept.
func (mw *Writer) Fail(err error) {
	if mw.err == nil {
		mw.err = err
	}
}

// Err returns the first error hit while writing.
func (mw *Writer) Err() error {
	return mw.err
}

// Component turns a body func into a templ.Component.
func Component(body func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := NewWriter(w)
		body(ctx, mw)
		return mw.Err()
	})
}
