package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

// ForwardingHeaders are consulted in order when proxies are trusted.
var ForwardingHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the normalized client IP, or "" when none parses.
// Forwarding headers are ignored unless trustProxy is set, since any client
// can forge them.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, h := range ForwardingHeaders {
			value := r.Header.Get(h)
			if value == "" {
				continue
			}
			// X-Forwarded-For lists the original client first.
			for candidate := range strings.SplitSeq(value, ",") {
				if ip := normalize(candidate); ip != "" {
					return ip
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client IP once per request and stores it in the
// request context.
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor returns a logger.ContextExtractor for the client IP.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
