package email

import (
	"fmt"
	"net/mail"
	"strings"
)

// Provider names a delivery backend.
type Provider string

const (
	ProviderDisabled Provider = "disabled"
	ProviderDev      Provider = "dev"
	ProviderPostmark Provider = "postmark"
	ProviderSMTP     Provider = "smtp"
)

// Config holds email delivery settings. Only the fields of the selected
// provider are required.
type Config struct {
	Provider  Provider `env:"EMAIL_PROVIDER" envDefault:"disabled"`
	Sender    string   `env:"EMAIL_SENDER"`
	Recipient string   `env:"EMAIL_RECIPIENT"`
	ReplyTo   string   `env:"EMAIL_REPLY_TO"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// Enabled reports whether a real provider is configured.
func (c Config) Enabled() bool {
	return c.Provider != "" && c.Provider != ProviderDisabled
}

// Validate checks the fields the selected provider needs.
func (c Config) Validate() error {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch c.Provider {
	case "", ProviderDisabled:
		return nil
	case ProviderDev:
		require("EMAIL_DEV_DIR", c.DevDir)
	case ProviderPostmark:
		require("POSTMARK_SERVER_TOKEN", c.PostmarkServerToken)
		require("POSTMARK_ACCOUNT_TOKEN", c.PostmarkAccountToken)
	case ProviderSMTP:
		require("SMTP_HOST", c.SMTPHost)
		if c.SMTPPort <= 0 {
			missing = append(missing, "SMTP_PORT")
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, c.Provider)
	}
	require("EMAIL_RECIPIENT", c.Recipient)
	if c.Provider != ProviderDev {
		require("EMAIL_SENDER", c.Sender)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required for provider %q", ErrInvalidConfig, strings.Join(missing, ", "), c.Provider)
	}

	for name, addr := range map[string]string{"EMAIL_SENDER": c.Sender, "EMAIL_RECIPIENT": c.Recipient, "EMAIL_REPLY_TO": c.ReplyTo} {
		if addr == "" {
			continue
		}
		if _, err := mail.ParseAddress(addr); err != nil {
			return fmt.Errorf("%w: %s is not a valid address", ErrInvalidConfig, name)
		}
	}
	return nil
}
