package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/myrcvr/onboardmail/pkg/logger"
	"github.com/myrcvr/onboardmail/pkg/requestid"
)

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for regular HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders a toast for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchInner.
	ToastMode datastar.ElementPatchMode
}

type errorInfo struct {
	status  int
	message string
	kind    string
	level   slog.Level
}

func classifyError(err error) errorInfo {
	info := errorInfo{
		status:  http.StatusInternalServerError,
		message: "Something went wrong, please try again",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.status = httpErr.Code
		info.message = httpErr.Key
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.status = http.StatusBadRequest
		info.message = validationMessage(validationErr)
	}

	info.kind, info.level = "error", slog.LevelError
	if info.status < http.StatusInternalServerError {
		info.kind, info.level = "warning", slog.LevelWarn
	}
	return info
}

func validationMessage(v ValidationError) string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		for _, msg := range v[field] {
			messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	if len(messages) == 0 {
		return "Validation failed"
	}
	return strings.Join(messages, "; ")
}

func wantsJSON(r *http.Request) bool {
	return !IsDataStar(r) && strings.Contains(r.Header.Get("Accept"), "application/json")
}

// NewErrorHandler returns an ErrorHandler that logs the error and renders a
// toast for DataStar requests, a JSON envelope for API clients, or an error
// page otherwise.
func NewErrorHandler[C Context](log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[C] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchInner
	}

	return func(ctx C, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		info := classifyError(err)
		reqID := requestid.FromContext(r.Context())

		log.LogAttrs(r.Context(), info.level, "request failed",
			logger.RequestID(reqID),
			logger.Error(err),
			logger.Component("error_handler"),
			slog.Int("status_code", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		var response Response
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			// SSE responses keep their 200 status.
			response = Templ(
				cfg.ErrorToast(ErrorToastParams{Message: info.message, Type: info.kind, RequestID: reqID}),
				WithTarget(cfg.ToastTarget),
				WithPatchMode(cfg.ToastMode),
			)
		case wantsJSON(r):
			response = JSONError(err)
		case !IsDataStar(r) && cfg.ErrorPage != nil:
			response = Templ(
				cfg.ErrorPage(ErrorPageParams{Error: info.message, StatusCode: info.status, RequestID: reqID}),
			).WithStatus(info.status)
		default:
			http.Error(w, info.message, info.status)
			return
		}

		if renderErr := response.Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.RequestID(reqID),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
