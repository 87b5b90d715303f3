// Package handler provides type-safe HTTP handlers for the onboarding web shell.
//
// A HandlerFunc receives a Context and an already-bound request value and
// returns a Response. Wrap adapts it to http.HandlerFunc, running the
// configured binders, decorators and error handler:
//
//	preview := handler.HandlerFunc[handler.Context, PreviewRequest](
//		func(ctx handler.Context, req PreviewRequest) handler.Response {
//			return handler.Templ(views.Preview(req.Selection()), handler.WithTarget("#preview"))
//		},
//	)
//
//	r.Get("/preview", handler.Wrap(preview,
//		handler.WithBinders[handler.Context, PreviewRequest](binder.Signals(), binder.Query()),
//		handler.WithErrorHandler[handler.Context, PreviewRequest](errorHandler),
//	))
//
// # Responses
//
// Templ, TemplPartial and TemplMulti render templ components. For DataStar
// requests they are sent as SSE element patches; regular requests get plain
// HTML. WithSignals patches browser signals alongside the elements. JSON and
// Empty cover the API endpoints.
//
// # Errors
//
// Return HTTPError or ValidationError values from binders or wrap them in a
// Response via Error. NewErrorHandler classifies them, logs with slog and
// renders either an error page or a toast patch depending on the request type.
package handler
