package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/myrcvr/onboardmail/pkg/logger"
)

// CheckFunc reports whether a dependency is ready.
type CheckFunc func(context.Context) error

// HealthCheckHandler answers "ALIVE" when no checks are given. Otherwise it
// runs every check and answers "READY", or 503 "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...CheckFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(checks) == 0 {
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed",
					logger.Component("healthcheck"),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		_, _ = w.Write([]byte("READY"))
	}
}
