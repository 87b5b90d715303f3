package handler

import (
	"errors"
	"net/http"

	"github.com/myrcvr/onboardmail/pkg/binder"
)

// HandlerFunc handles a request of type R with context C.
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses an HTTP request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting behaviour.
// The first decorator passed to WithDecorators is the outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinders appends request binders. They run in order; a binder returning
// binder.ErrNotApplicable is skipped.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes a plain-text error using the HTTPError status if present.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		http.Error(ctx.ResponseWriter(), validationErr.Error(), http.StatusBadRequest)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := NewContext(w, r).(C); ok {
				return c
			}
			panic("handler: default context factory cannot build custom context type, use WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, errors.Join(ErrBadRequest, err))
				return
			}
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// errorResponse defers an error to the configured ErrorHandler by failing Render.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response whose rendering fails with err, handing it to the
// ErrorHandler configured on Wrap.
func Error(err error) Response {
	return errorResponse{err: err}
}
