package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/pkg/email"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
	"github.com/myrcvr/onboardmail/pkg/ratelimiter"
	"github.com/myrcvr/onboardmail/pkg/redis"
	"github.com/myrcvr/onboardmail/pkg/requestid"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun(t *testing.T) {
	t.Run("missing and unknown commands", func(t *testing.T) {
		_, err := runArgs(t)
		assert.Error(t, err)
		_, err = runArgs(t, "bake")
		assert.Error(t, err)
		out, err := runArgs(t, "help")
		require.NoError(t, err)
		assert.Contains(t, out, "render")
	})

	t.Run("render text", func(t *testing.T) {
		out, err := runArgs(t, "render", "-client", "Acme", "-product", "Ethoca", "-product", "CB Partials", "-format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "Hello Acme,")
		assert.Contains(t, out, "CB Partials, Ethoca")
	})

	t.Run("render html with asset base", func(t *testing.T) {
		out, err := runArgs(t, "render", "-client", "Acme", "-product", "RDR", "-guide", "KNK",
			"-asset-base", "https://cdn.example.com/img/", "-format", "html")
		require.NoError(t, err)
		assert.Contains(t, out, `src="https://cdn.example.com/img/knk-guide.png"`)
	})

	t.Run("render json", func(t *testing.T) {
		out, err := runArgs(t, "render", "-client", "Acme", "-product", "MCX", "-crm", "self", "-format", "json")
		require.NoError(t, err)
		var d dump
		require.NoError(t, json.Unmarshal([]byte(out), &d))
		assert.Equal(t, "Onboarding requirements for Acme", d.Subject)
		assert.NotEmpty(t, d.Document.Blocks)
		assert.NotContains(t, d.Sections, onboarding.SectionGuides)
		assert.NotContains(t, d.Sections, onboarding.SectionCRMLinks)
	})

	t.Run("render yaml", func(t *testing.T) {
		out, err := runArgs(t, "render", "-client", "Acme", "-product", "OI", "-format", "yaml")
		require.NoError(t, err)
		var d map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &d))
		assert.Equal(t, "Onboarding requirements for Acme", d["subject"])
		assert.Contains(t, d, "document")
	})

	t.Run("render rejects bad input", func(t *testing.T) {
		_, err := runArgs(t, "render", "-product", "Stripe")
		assert.Error(t, err)
		_, err = runArgs(t, "render", "-format", "pdf")
		assert.Error(t, err)
	})

	t.Run("send without provider", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "disabled")
		_, err := runArgs(t, "send", "-client", "Acme", "-product", "Ethoca")
		assert.ErrorIs(t, err, email.ErrDisabled)
	})

	t.Run("send through dev provider", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("EMAIL_PROVIDER", "dev")
		t.Setenv("EMAIL_DEV_DIR", dir)
		t.Setenv("EMAIL_RECIPIENT", "ops@example.com")

		out, err := runArgs(t, "send", "-client", "Acme", "-product", "Ethoca")
		require.NoError(t, err)
		assert.Contains(t, out, "ops@example.com")

		_, err = runArgs(t, "send", "-product", "Ethoca")
		assert.Error(t, err, "client name required")
	})
}

func TestRouter(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := newRouter(context.Background(), appConfig{Env: "development", Generator: generator.Config{Title: "Onboarding Requirements"}}, log)
	require.NoError(t, err)

	for path, want := range map[string]string{"/healthz": "ALIVE", "/readyz": "READY"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, want, w.Body.String(), path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestid.Header))
	assert.Contains(t, w.Body.String(), "Real-Time Email Preview")

	_, err = newRouter(context.Background(), appConfig{Email: email.Config{Provider: email.ProviderSMTP}}, log)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
}

func TestRouter_SendIsRateLimited(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := newRouter(context.Background(), appConfig{
		Env:       "development",
		Email:     email.Config{Provider: email.ProviderDev, DevDir: t.TempDir(), Recipient: "ops@example.com"},
		SendLimit: ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour},
	}, log)
	require.NoError(t, err)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/send",
			strings.NewReader(`{"clientName":"Acme","crmMode":"managed","products":{"ethoca":true}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "too_many_requests")

	_, err = newRouter(context.Background(), appConfig{
		Email: email.Config{Provider: email.ProviderDev, DevDir: t.TempDir(), Recipient: "ops@example.com"},
	}, log)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	_, err = newRouter(context.Background(), appConfig{
		Email:          email.Config{Provider: email.ProviderDev, DevDir: t.TempDir(), Recipient: "ops@example.com"},
		SendLimit:      ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour},
		SendLimitStore: "redis",
	}, log)
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
}
