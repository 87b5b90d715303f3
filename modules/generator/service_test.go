package generator_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/modules/generator/views"
	"github.com/myrcvr/onboardmail/pkg/render"
)

func newServer(t *testing.T, opts ...generator.ServiceOption) http.Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := views.Default()
	svc := generator.NewService(
		generator.Config{Title: "Onboarding Requirements", AssetBaseURL: "https://onboard.example.com/assets"},
		v,
		log,
		handler.NewErrorHandler[handler.Context](log, v.ErrorHandlerConfig()),
		opts...,
	)
	return svc.Handle()
}

func do(t *testing.T, h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func dataStar(method, target string, signals string) *http.Request {
	var r *http.Request
	if method == http.MethodGet {
		r = httptest.NewRequest(method, target+"?datastar="+url.QueryEscape(signals), nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(signals))
		r.Header.Set("Content-Type", "application/json")
	}
	r.Header.Set("Accept", "text/event-stream")
	r.Header.Set("Datastar-Request", "true")
	return r
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func parse(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("blank page", func(t *testing.T) {
		t.Parallel()

		w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()

		doc := parse(t, body)
		copyBtn := findByID(doc, "copy")
		require.NotNil(t, copyBtn)
		assert.True(t, hasAttr(copyBtn, "disabled"))
		assert.Nil(t, findByID(doc, "send"), "send button hidden without sink")
		require.NotNil(t, findByID(doc, "email-body"))
		require.NotNil(t, findByID(doc, "toast-container"))

		assert.Contains(t, body, "Hello [Client Name],")
		assert.Contains(t, body, "[Select products on the left")
		assert.Contains(t, body, views.DataStarScript)
		assert.Contains(t, body, "Copied")
		assert.Contains(t, body, "Ready for sending.")
		assert.Contains(t, body, "async function copyEmail()")
		assert.Contains(t, body, "'text/html': new Blob")
		assert.Contains(t, body, "'text/plain': new Blob")

		// Form lists products in catalog definition order.
		order := []string{"CB Partials", "CB Reps - Full", "Ethoca", "CDRN", "RDR", "VAMP", "OI", "MCOM", "MCX"}
		last := -1
		form := body[strings.Index(body, `<form`):strings.Index(body, `</form>`)]
		for _, name := range order {
			idx := strings.Index(form, "> "+name+"</label>")
			require.Greater(t, idx, last, name)
			last = idx
		}
	})

	t.Run("prefilled from query", func(t *testing.T) {
		t.Parallel()

		q := url.Values{"client": {"Acme"}, "crm": {"self"}, "product": {"Ethoca", "CB Partials"}}
		w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()

		doc := parse(t, body)
		assert.False(t, hasAttr(findByID(doc, "copy"), "disabled"))
		guides := findByID(doc, "guides")
		require.NotNil(t, guides)
		assert.Contains(t, guides.Attr, html.Attribute{Key: "style", Val: "display: none"})

		assert.Contains(t, body, "Hello Acme,")
		assert.Contains(t, body, "<strong>CB Partials, Ethoca</strong>")
		assert.Contains(t, body, "Onboarding requirements for Acme")
		assert.Contains(t, body, "&#34;crmMode&#34;:&#34;self&#34;")
	})

	t.Run("send button shown with sink", func(t *testing.T) {
		t.Parallel()

		sink := render.WriterFunc(func(context.Context, render.Payload) error { return nil })
		w := do(t, newServer(t, generator.WithSink(sink)), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotNil(t, findByID(parse(t, w.Body.String()), "send"))
	})

	t.Run("unknown product renders error page", func(t *testing.T) {
		t.Parallel()

		w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/?product=Stripe", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown product")
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("datastar patches preview and canCopy", func(t *testing.T) {
		t.Parallel()

		signals := `{"clientName":"Acme","crmMode":"managed","products":{"cbRepsFull":true},"guides":{"knk":true},"copied":false}`
		w := do(t, newServer(t), dataStar(http.MethodGet, "/preview", signals))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()

		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, `id="preview"`)
		assert.Contains(t, body, "Hello Acme,")
		assert.Contains(t, body, "https://onboard.example.com/assets/knk-guide.png")
		assert.Contains(t, body, "2fa@myrcvr.com")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"canCopy":true`)
	})

	t.Run("blank client cannot copy", func(t *testing.T) {
		t.Parallel()

		w := do(t, newServer(t), dataStar(http.MethodGet, "/preview", `{"clientName":"  ","products":{"rdr":true}}`))
		assert.Contains(t, w.Body.String(), `"canCopy":false`)
		assert.Contains(t, w.Body.String(), "Hello   ,")
		assert.NotContains(t, w.Body.String(), "[Client Name]")
	})

	t.Run("invalid signals produce a toast", func(t *testing.T) {
		t.Parallel()

		w := do(t, newServer(t), dataStar(http.MethodGet, "/preview", `{"products":{"paypal":true}}`))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "#toast-container")
		assert.Contains(t, w.Body.String(), "toast-warning")
	})

	t.Run("plain request returns the fragment", func(t *testing.T) {
		t.Parallel()

		w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/preview?client=Beta&product=MCX", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), `<div id="preview"`))
		assert.Contains(t, w.Body.String(), "<strong>MCX</strong>")
	})
}

func TestPayload(t *testing.T) {
	t.Parallel()

	w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/payload?client=Acme&product=RDR&crm=self", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data render.Payload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Onboarding requirements for Acme", body.Data.Subject)
	assert.Contains(t, body.Data.HTML, "<strong>RDR</strong>")
	assert.Contains(t, body.Data.Text, "Hello Acme,")

	w = do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/payload?guide=Woo", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestSend(t *testing.T) {
	t.Parallel()

	jsonPost := func(body string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept", "application/json")
		return r
	}
	ready := `{"clientName":"Acme","crmMode":"managed","products":{"ethoca":true}}`

	t.Run("disabled without sink", func(t *testing.T) {
		t.Parallel()

		w := do(t, newServer(t), jsonPost(ready))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("delivers payload", func(t *testing.T) {
		t.Parallel()

		var got render.Payload
		sink := render.WriterFunc(func(_ context.Context, p render.Payload) error {
			got = p
			return nil
		})
		w := do(t, newServer(t, generator.WithSink(sink)), jsonPost(ready))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Onboarding requirements for Acme", got.Subject)
		assert.Contains(t, got.HTML, "<strong>Ethoca</strong>")
		assert.NotEmpty(t, got.Text)
	})

	t.Run("rejects incomplete selection", func(t *testing.T) {
		t.Parallel()

		called := false
		sink := render.WriterFunc(func(context.Context, render.Payload) error {
			called = true
			return nil
		})
		w := do(t, newServer(t, generator.WithSink(sink)), jsonPost(`{"clientName":"","products":{}}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "clientName")
		assert.Contains(t, w.Body.String(), "products")
		assert.False(t, called)
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()

		sink := render.WriterFunc(func(context.Context, render.Payload) error { return errors.New("smtp down") })
		w := do(t, newServer(t, generator.WithSink(sink)), jsonPost(ready))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("datastar gets a success toast", func(t *testing.T) {
		t.Parallel()

		sink := render.WriterFunc(func(context.Context, render.Payload) error { return nil })
		w := do(t, newServer(t, generator.WithSink(sink)), dataStar(http.MethodPost, "/send", ready))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "toast-success")
		assert.Contains(t, w.Body.String(), "Draft sent for review.")
	})
}

func TestAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"knk-guide.png", "sticky-guide.png"} {
		w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/assets/"+name, nil))
		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"), name)
	}

	w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/assets/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	w := do(t, newServer(t), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>404</h1>")

	r := httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.Header.Set("Accept", "application/json")
	w = do(t, newServer(t), r)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"not_found"`)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/payload", strings.NewReader(`{"clientName":`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	w := do(t, newServer(t), r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
}
