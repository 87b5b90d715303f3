package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/modules/generator/views"
	"github.com/myrcvr/onboardmail/pkg/catalog"
	"github.com/myrcvr/onboardmail/pkg/clientip"
	"github.com/myrcvr/onboardmail/pkg/config"
	"github.com/myrcvr/onboardmail/pkg/email"
	"github.com/myrcvr/onboardmail/pkg/environment"
	"github.com/myrcvr/onboardmail/pkg/httpserver"
	"github.com/myrcvr/onboardmail/pkg/logger"
	"github.com/myrcvr/onboardmail/pkg/ratelimiter"
	"github.com/myrcvr/onboardmail/pkg/redis"
	"github.com/myrcvr/onboardmail/pkg/requestid"
)

func loadConfig() (appConfig, error) {
	return config.Load[appConfig](config.WithFiles(".env"))
}

func newLogger(cfg appConfig) *slog.Logger {
	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)
	return log
}

func serve(ctx context.Context, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	router, err := newRouter(ctx, cfg, log)
	if err != nil {
		return err
	}
	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}

func newRouter(ctx context.Context, cfg appConfig, log *slog.Logger) (chi.Router, error) {
	v := views.Default()
	errorHandler := handler.NewErrorHandler[handler.Context](log, v.ErrorHandlerConfig())
	checks := []httpserver.CheckFunc{guideAssetsCheck}

	var opts []generator.ServiceOption
	if cfg.Email.Enabled() {
		sender, err := email.New(cfg.Email)
		if err != nil {
			return nil, err
		}
		store, check, err := sendLimitStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if check != nil {
			checks = append(checks, check)
		}
		limit, err := sendLimiter(store, cfg.SendLimit, errorHandler)
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			generator.WithSink(email.NewSink(sender, cfg.Email.Recipient, log)),
			generator.WithSendMiddleware(limit),
		)
		log.Info("draft delivery enabled",
			logger.Provider(string(cfg.Email.Provider)),
			slog.String("rate_limit_store", cfg.SendLimitStore),
		)
	}
	svc := generator.NewService(cfg.Generator, v, log, errorHandler, opts...)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.TrustProxy),
		environment.Middleware(environment.Parse(cfg.Env)),
		middleware.CleanPath,
		middleware.Recoverer,
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))
	r.Mount("/", svc.Handle())
	return r, nil
}

// sendLimitStore picks the bucket store. Redis shares limits across
// instances and adds a readiness check.
func sendLimitStore(ctx context.Context, cfg appConfig) (ratelimiter.Store, httpserver.CheckFunc, error) {
	switch cfg.SendLimitStore {
	case "", "memory":
		return ratelimiter.NewMemoryStore(), nil, nil
	case "redis":
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return ratelimiter.NewRedisStore(client), redis.Healthcheck(client), nil
	default:
		return nil, nil, fmt.Errorf("unknown SEND_LIMIT_STORE %q", cfg.SendLimitStore)
	}
}

// sendLimiter throttles draft delivery per client IP. Denials go through the
// shared error handler so DataStar callers get a toast.
func sendLimiter(store ratelimiter.Store, cfg ratelimiter.Config, errorHandler handler.ErrorHandler[handler.Context]) (func(http.Handler) http.Handler, error) {
	limiter, err := ratelimiter.NewLimiter(store, cfg)
	if err != nil {
		return nil, err
	}
	byIP := func(r *http.Request) string { return clientip.FromContext(r.Context()) }
	return ratelimiter.Middleware(limiter, byIP,
		ratelimiter.WithDeniedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
		})),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			errorHandler(handler.NewContext(w, r), err)
		}),
	), nil
}

// guideAssetsCheck fails when a guide image is missing from the binary.
func guideAssetsCheck(context.Context) error {
	for _, g := range catalog.Guides() {
		if _, err := fs.Stat(generator.Assets(), g.Asset()); err != nil {
			return fmt.Errorf("guide asset %s: %w", g.Asset(), err)
		}
	}
	return nil
}
