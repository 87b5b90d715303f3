// Package sanitizer holds small string transforms for untrusted form input and
// log output. Transforms share the func(string) string shape so they can be
// chained with Apply or stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(sanitizer.SingleLine, sanitizer.MaxLength(100))
//	name := clean(r.FormValue("client"))
package sanitizer
