// Package logger builds slog loggers and provides the attribute helpers used
// across the service.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "preview rendered",
//		logger.Component("onboarding"),
//		logger.Products(names...),
//	)
//
// Attribute helpers that receive an empty value return an empty slog.Attr so
// they can be passed unconditionally.
package logger
