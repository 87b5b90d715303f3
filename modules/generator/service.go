package generator

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/pkg/binder"
	"github.com/myrcvr/onboardmail/pkg/logger"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
	"github.com/myrcvr/onboardmail/pkg/render"
)

// Config holds the module settings.
type Config struct {
	Title string `env:"APP_TITLE" envDefault:"Onboarding Requirements"`
	// AssetBaseURL prefixes guide image URLs in the rendered email. Set it to
	// an absolute URL so pasted emails load the images.
	AssetBaseURL string `env:"ASSET_BASE_URL" envDefault:"/assets"`
}

type Service struct {
	cfg          Config
	views        *Views
	sink         render.Writer
	sendMW       []func(http.Handler) http.Handler
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// ServiceOption configures optional Service dependencies.
type ServiceOption func(*Service)

// WithSink enables POST /send, delivering drafts through w.
func WithSink(w render.Writer) ServiceOption {
	return func(s *Service) { s.sink = w }
}

// WithSendMiddleware wraps POST /send only, e.g. with a rate limiter.
func WithSendMiddleware(mw ...func(http.Handler) http.Handler) ServiceOption {
	return func(s *Service) { s.sendMW = append(s.sendMW, mw...) }
}

func NewService(
	cfg Config,
	views *Views,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...ServiceOption,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{cfg: cfg, views: views, log: log, errorHandler: errorHandler}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	binders := handler.WithBinders[handler.Context, SelectionRequest](
		binder.Signals(), // DataStar actions
		binder.JSON(),    // API clients
		binder.Query(),   // shared links
	)
	errs := handler.WithErrorHandler[handler.Context, SelectionRequest](s.errorHandler)

	r.Get("/", handler.Wrap(s.page, binders, errs))
	r.Get("/preview", handler.Wrap(s.preview, binders, errs))
	r.Get("/payload", handler.Wrap(s.payload, binders, errs))
	r.With(s.sendMW...).Post("/send", handler.Wrap(s.send, binders, errs))
	r.Handle("/assets/*", http.StripPrefix("/assets/", assetsHandler()))
	r.NotFound(s.notFound)

	return r
}

func (s *Service) notFound(w http.ResponseWriter, r *http.Request) {
	if s.errorHandler == nil {
		http.NotFound(w, r)
		return
	}
	s.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
}

func (s *Service) renderOptions() []render.Option {
	return []render.Option{render.WithAssetBaseURL(s.cfg.AssetBaseURL)}
}

func (s *Service) previewParams(sel onboarding.Selection) PreviewParams {
	return PreviewParams{
		Subject: onboarding.Subject(sel),
		Email:   render.Email(onboarding.Assemble(sel), s.renderOptions()...),
		CanCopy: sel.CanCopy(),
	}
}

func (s *Service) page(ctx handler.Context, req SelectionRequest) handler.Response {
	sel, err := req.Selection()
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.Page(PageParams{
		Title:       s.cfg.Title,
		Signals:     SignalsFor(sel),
		Form:        formParams(sel),
		Preview:     s.previewParams(sel),
		SendEnabled: s.sink != nil,
	}))
}

func (s *Service) preview(ctx handler.Context, req SelectionRequest) handler.Response {
	sel, err := req.Selection()
	if err != nil {
		return handler.Error(err)
	}
	s.log.DebugContext(ctx, "preview rendered",
		logger.Component("onboarding"),
		logger.Products(productNames(sel)...),
		logger.CRMMode(sel.ManagedCRM),
	)
	return handler.Templ(s.views.Preview(s.previewParams(sel))).
		WithSignals(previewSignals{CanCopy: sel.CanCopy()})
}

func (s *Service) payload(ctx handler.Context, req SelectionRequest) handler.Response {
	sel, err := req.Selection()
	if err != nil {
		return handler.JSONError(err)
	}
	p, err := render.NewPayload(ctx, sel, s.renderOptions()...)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(p)
}

func (s *Service) send(ctx handler.Context, req SelectionRequest) handler.Response {
	if s.sink == nil {
		return handler.Error(handler.NewHTTPError(http.StatusServiceUnavailable, "Email delivery is disabled"))
	}
	sel, err := req.Selection()
	if err != nil {
		return handler.Error(err)
	}
	if !sel.CanCopy() {
		verr := handler.NewValidationError()
		if !sel.HasClientName() {
			verr.Add("clientName", "client name is required")
		}
		if sel.Products.Empty() {
			verr.Add("products", "select at least one product")
		}
		return handler.Error(verr)
	}

	p, err := render.NewPayload(ctx, sel, s.renderOptions()...)
	if err != nil {
		return handler.Error(err)
	}
	if err := s.sink.WriteRichText(ctx, p); err != nil {
		return handler.Error(errors.Join(
			handler.NewHTTPError(http.StatusBadGateway, "Could not deliver the draft, please try again"),
			err,
		))
	}

	s.log.InfoContext(ctx, "draft sent",
		logger.Component("onboarding"),
		logger.Products(productNames(sel)...),
		logger.CRMMode(sel.ManagedCRM),
	)

	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSON(p)
	}
	return handler.Templ(
		s.views.Toast(ToastParams{Message: "Draft sent for review.", Type: "success"}),
		handler.WithTarget("#toast-container"),
		handler.WithPatchMode(handler.PatchInner),
	)
}

func productNames(sel onboarding.Selection) []string {
	ordered := sel.OrderedProducts()
	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.String()
	}
	return names
}

// ErrorHandlerConfig wires the module views into handler.NewErrorHandler.
func (v *Views) ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage: v.ErrorPage,
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return v.Toast(ToastParams{Message: p.Message, Type: p.Type})
		},
		ToastTarget: "#toast-container",
		ToastMode:   handler.PatchInner,
	}
}
