// Package config loads typed configuration structs from the process
// environment and optional .env files.
//
// Structs are annotated with caarlos0/env tags:
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"onboardmail"`
//		Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config](config.WithFiles(".env"))
//
// Variables already set in the environment take precedence over values read
// from files. Missing files are skipped. Nothing is written back to the
// process environment, so tests can pass their own variables with
// WithEnvironment.
package config
