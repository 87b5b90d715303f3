package render

import "strings"

// Option configures rendering.
type Option func(*config)

type config struct {
	assetBaseURL string
}

// WithAssetBaseURL sets the prefix used for guide image sources. Pasted emails
// need an absolute URL; the preview works with a relative one.
// Defaults to "/assets".
func WithAssetBaseURL(base string) Option {
	return func(c *config) {
		if base != "" {
			c.assetBaseURL = strings.TrimRight(base, "/")
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{assetBaseURL: "/assets"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) assetURL(name string) string {
	return c.assetBaseURL + "/" + name
}
