package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrReadingFile   = errors.New("failed to read env file")
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)

// Option configures Load.
type Option func(*options)

type options struct {
	files   []string
	environ map[string]string
	prefix  string
}

// WithFiles reads the given .env files in order. Earlier files win.
func WithFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithEnvironment replaces the process environment as the primary source.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environ = maps.Clone(vars) }
}

// WithPrefix requires every variable name to start with prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load parses a T from the environment.
func Load[T any](opts ...Option) (T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.environ == nil {
		o.environ = env.ToMap(os.Environ())
	}

	for _, file := range o.files {
		vars, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			var zero T
			return zero, errors.Join(ErrReadingFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, v := range vars {
			if _, set := o.environ[k]; !set {
				o.environ[k] = v
			}
		}
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Environment: o.environ,
		Prefix:      o.prefix,
	})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}
