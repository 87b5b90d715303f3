// Command onboardmail serves the onboarding email generator and renders
// drafts from the command line.
//
//	onboardmail serve
//	onboardmail render -client Acme -product Ethoca -product RDR -format text
//	onboardmail send -client Acme -product "CB Partials"
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/pkg/email"
	"github.com/myrcvr/onboardmail/pkg/httpserver"
	"github.com/myrcvr/onboardmail/pkg/ratelimiter"
	"github.com/myrcvr/onboardmail/pkg/redis"
)

type appConfig struct {
	AppName        string `env:"APP_NAME" envDefault:"onboardmail"`
	Env            string `env:"APP_ENV" envDefault:"development"`
	TrustProxy     bool   `env:"TRUST_PROXY"`
	SendLimitStore string `env:"SEND_LIMIT_STORE" envDefault:"memory"` // memory or redis
	HTTP           httpserver.Config
	Email          email.Config
	Generator      generator.Config
	SendLimit      ratelimiter.Config
	Redis          redis.Config
}

const usage = `usage: onboardmail <command> [flags]

commands:
  serve    run the web generator
  render   print a draft (html, text, json, yaml)
  send     deliver a draft through the configured email provider
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "onboardmail:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "serve":
		return serve(ctx, args[1:])
	case "render":
		return renderCmd(ctx, args[1:], stdout, stderr)
	case "send":
		return sendCmd(ctx, args[1:], stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
