package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors" keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// RequestID records the request identifier. Empty ids are dropped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }
func Event(name string) slog.Attr     { return slog.String("event", name) }
func Handler(name string) slog.Attr   { return slog.String("handler", name) }

// Products records selected product names in presentation order.
func Products(names ...string) slog.Attr {
	return slog.Any("products", names)
}

// Guides records selected guide names.
func Guides(names ...string) slog.Attr {
	return slog.Any("guides", names)
}

// CRMMode records whether the client CRM is managed ("managed") or not ("self").
func CRMMode(managed bool) slog.Attr {
	if managed {
		return slog.String("crm_mode", "managed")
	}
	return slog.String("crm_mode", "self")
}

// Provider records the outbound email provider name.
func Provider(name string) slog.Attr { return slog.String("provider", name) }

// MessageID records a provider-assigned message id. Empty ids are dropped.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

func Duration(d any) slog.Attr { return slog.Any("duration", d) }
