package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches github.com/a-h/templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures an element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

// Patch creates a TemplPatch for TemplMulti.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// templResponse renders patches via SSE for DataStar, or the full component
// (falling back to the patches concatenated) for regular requests.
type templResponse struct {
	full    TemplComponent
	patches []TemplPatch
	signals any
	status  int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		if t.signals != nil {
			return sse.MarshalAndPatchSignals(t.signals)
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// TemplResponse is a templ Response that can also patch DataStar signals.
type TemplResponse struct{ templResponse }

// WithSignals patches the given signals after the elements on DataStar
// requests. Regular requests ignore them.
func (t TemplResponse) WithSignals(signals any) TemplResponse {
	t.signals = signals
	return t
}

// WithStatus sets the status code of regular HTML responses.
func (t TemplResponse) WithStatus(code int) TemplResponse {
	t.status = code
	return t
}

// Templ renders component directly, or as a single SSE patch for DataStar.
func Templ(component TemplComponent, opts ...TemplOption) TemplResponse {
	return TemplResponse{templResponse{full: component, patches: []TemplPatch{Patch(component, opts...)}}}
}

// TemplPartial sends partial to DataStar requests and full to regular ones.
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) TemplResponse {
	return TemplResponse{templResponse{full: full, patches: []TemplPatch{Patch(partial, opts...)}}}
}

// TemplMulti sends each patch separately to DataStar requests and
// concatenates them for regular ones.
func TemplMulti(patches ...TemplPatch) TemplResponse {
	return TemplResponse{templResponse{patches: patches}}
}
