package binder

import (
	"errors"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds DataStar signals. GET requests carry them in the "datastar"
// query parameter, other methods in the JSON body.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDataStar(r) {
			return ErrNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrFailedToParseSignals, err)
		}
		return nil
	}
}

func isDataStar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true" ||
		strings.Contains(r.Header.Get("Accept"), "text/event-stream") ||
		r.URL.Query().Has("datastar")
}
