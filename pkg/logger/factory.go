package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/myrcvr/onboardmail/pkg/environment"
)

// Format is the log output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures New.
type Option func(*config)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output format. It panics on unknown formats so a
// misconfigured binary fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers extractors evaluated on every record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) { c.extractors = append(c.extractors, extractors...) }
}

// WithEnvironment applies the defaults for env: text output at debug level in
// development, JSON at info level elsewhere. The service and env names are
// attached to every record.
func WithEnvironment(env environment.Environment, service string) Option {
	return func(c *config) {
		if env.IsDevelopment() {
			c.level = slog.LevelDebug
			c.format = FormatText
		} else {
			c.level = slog.LevelInfo
			c.format = FormatJSON
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", env.String()))
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a slog.Logger. Without options it writes JSON at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler
	if cfg.format == FormatText {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(NewContextHandler(h, cfg.extractors...))
}
