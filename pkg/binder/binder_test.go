package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myrcvr/onboardmail/pkg/binder"
)

type request struct {
	ClientName string          `json:"clientName" query:"client"`
	CRMMode    string          `json:"crmMode" query:"crm"`
	Products   map[string]bool `json:"products" query:"-"`
	Names      []string        `json:"-" query:"product"`
	Count      int             `json:"-"`
	Enabled    bool            `json:"-" query:"enabled"`
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields and slices", func(t *testing.T) {
		t.Parallel()

		q := url.Values{}
		q.Set("client", "Acme Co")
		q.Set("crm", "self")
		q.Add("product", "Ethoca")
		q.Add("product", "RDR, CDRN")
		q.Set("count", "3")
		q.Set("enabled", "on")
		r := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)

		var req request
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, "Acme Co", req.ClientName)
		assert.Equal(t, "self", req.CRMMode)
		assert.Equal(t, []string{"Ethoca", "RDR", "CDRN"}, req.Names)
		assert.Equal(t, 3, req.Count)
		assert.True(t, req.Enabled)
		assert.Nil(t, req.Products)
	})

	t.Run("empty query is not applicable", func(t *testing.T) {
		t.Parallel()

		var req request
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), &req)
		assert.ErrorIs(t, err, binder.ErrNotApplicable)

		err = binder.Query()(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil), &req)
		assert.ErrorIs(t, err, binder.ErrNotApplicable)
	})

	t.Run("invalid values fail", func(t *testing.T) {
		t.Parallel()

		var req request
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/?count=many", nil), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)

		err = binder.Query()(httptest.NewRequest(http.MethodGet, "/?enabled=maybe", nil), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})

	t.Run("non struct target fails", func(t *testing.T) {
		t.Parallel()

		var s string
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/?a=b", nil), &s)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	post := func(body, contentType string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(body))
		if contentType != "" {
			r.Header.Set("Content-Type", contentType)
		}
		return r
	}

	t.Run("binds body", func(t *testing.T) {
		t.Parallel()

		var req request
		r := post(`{"clientName":"Acme","crmMode":"managed","products":{"ethoca":true}}`, "application/json; charset=utf-8")
		require.NoError(t, binder.JSON()(r, &req))
		assert.Equal(t, "Acme", req.ClientName)
		assert.Equal(t, map[string]bool{"ethoca": true}, req.Products)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()

		var req request
		err := binder.JSON()(post(`{"clientName":"a","extra":1}`, "application/json"), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		t.Parallel()

		var req request
		err := binder.JSON()(post(`{"clientName":"a"} {}`, "application/json"), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		t.Parallel()

		var req request
		body := `{"clientName":"` + strings.Repeat("a", binder.MaxJSONSize) + `"}`
		err := binder.JSON()(post(body, "application/json"), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("other content types not applicable", func(t *testing.T) {
		t.Parallel()

		var req request
		assert.ErrorIs(t, binder.JSON()(post("a=b", "application/x-www-form-urlencoded"), &req), binder.ErrNotApplicable)
		assert.ErrorIs(t, binder.JSON()(post("{}", ""), &req), binder.ErrNotApplicable)
		assert.ErrorIs(t, binder.JSON()(post("{}", "bad/;;"), &req), binder.ErrUnsupportedMediaType)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("regular request not applicable", func(t *testing.T) {
		t.Parallel()

		var req request
		err := binder.Signals()(httptest.NewRequest(http.MethodGet, "/preview", nil), &req)
		assert.ErrorIs(t, err, binder.ErrNotApplicable)
	})

	t.Run("get reads datastar query parameter", func(t *testing.T) {
		t.Parallel()

		signals := `{"clientName":"Acme","crmMode":"self","products":{"rdr":true},"canCopy":false}`
		r := httptest.NewRequest(http.MethodGet, "/preview?datastar="+url.QueryEscape(signals), nil)
		r.Header.Set("Datastar-Request", "true")

		var req request
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, "Acme", req.ClientName)
		assert.Equal(t, "self", req.CRMMode)
		assert.True(t, req.Products["rdr"])
	})

	t.Run("post reads body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"clientName":"Beta"}`))
		r.Header.Set("Datastar-Request", "true")
		r.Header.Set("Content-Type", "application/json")

		var req request
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, "Beta", req.ClientName)
	})

	t.Run("malformed signals fail", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/preview?datastar=%7Bnope", nil)
		r.Header.Set("Datastar-Request", "true")

		var req request
		assert.ErrorIs(t, binder.Signals()(r, &req), binder.ErrFailedToParseSignals)
	})
}
