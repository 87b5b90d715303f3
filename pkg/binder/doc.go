// Package binder populates request structs from HTTP requests.
//
// Each binder has the handler.Bind signature and returns ErrNotApplicable
// when the request carries nothing it understands, so several can be chained:
//
//	handler.WithBinders[handler.Context, SelectionRequest](
//		binder.Signals(), // DataStar signals (query or body)
//		binder.JSON(),    // application/json bodies from API clients
//		binder.Query(),   // plain query strings, e.g. shared preview links
//	)
//
// Query maps struct fields by their `query` tag (lower-cased field name when
// untagged, "-" to skip). Repeated keys and comma-separated values fill slices.
package binder
