package views_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/modules/generator/views"
	"github.com/myrcvr/onboardmail/pkg/catalog"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
	"github.com/myrcvr/onboardmail/pkg/render"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func parseDoc(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool { return attrOf(n, "id") == id }
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func pageParams(sel onboarding.Selection) generator.PageParams {
	f := generator.FormParams{ClientName: sel.ClientName, ManagedCRM: sel.ManagedCRM}
	for _, p := range catalog.FormProducts() {
		f.Products = append(f.Products, generator.Option{Key: p.Key(), Label: p.String(), Checked: sel.Products.Has(p)})
	}
	for _, g := range catalog.Guides() {
		f.Guides = append(f.Guides, generator.Option{Key: g.Key(), Label: g.Label(), Checked: sel.Guides.Has(g)})
	}
	return generator.PageParams{
		Title:   "Onboarding Requirements",
		Signals: generator.SignalsFor(sel),
		Form:    f,
		Preview: generator.PreviewParams{
			Subject: onboarding.Subject(sel),
			Email:   render.Email(onboarding.Assemble(sel)),
			CanCopy: sel.CanCopy(),
		},
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("escapes the client name everywhere", func(t *testing.T) {
		t.Parallel()

		name := `Acme "Co" <b>&</b>`
		sel := onboarding.NewSelection().WithClientName(name).ToggleProduct(catalog.Ethoca)
		out := renderString(t, views.Page(pageParams(sel)))
		assert.NotContains(t, out, "<b>&</b>")

		doc := parseDoc(t, out)
		input := find(doc, byID("client-name"))
		require.NotNil(t, input)
		assert.Equal(t, name, attrOf(input, "value"))

		body := find(doc, func(n *html.Node) bool { return n.Data == "body" })
		require.NotNil(t, body)
		var signals generator.Signals
		require.NoError(t, json.Unmarshal([]byte(attrOf(body, "data-signals")), &signals))
		assert.Equal(t, name, signals.ClientName)
		assert.True(t, signals.Products["ethoca"])
		assert.True(t, signals.CanCopy)

		copyBtn := find(doc, byID("copy"))
		require.NotNil(t, copyBtn)
		assert.False(t, hasAttr(copyBtn, "disabled"))
		assert.Contains(t, attrOf(copyBtn, "data-on:click"), "copyEmail()")
		assert.Nil(t, find(doc, byID("send")))

		ethoca := find(doc, func(n *html.Node) bool { return attrOf(n, "data-bind") == "products.ethoca" })
		require.NotNil(t, ethoca)
		assert.True(t, hasAttr(ethoca, "checked"))

		emailBody := find(doc, byID("email-body"))
		require.NotNil(t, emailBody)
		assert.Contains(t, textOf(emailBody), "Hello "+name+",")
	})

	t.Run("self CRM hides guides and disables actions", func(t *testing.T) {
		t.Parallel()

		p := pageParams(onboarding.NewSelection().WithManagedCRM(false))
		p.SendEnabled = true
		doc := parseDoc(t, renderString(t, views.Page(p)))

		guides := find(doc, byID("guides"))
		require.NotNil(t, guides)
		assert.Equal(t, "display: none", attrOf(guides, "style"))

		for _, id := range []string{"copy", "send"} {
			btn := find(doc, byID(id))
			require.NotNil(t, btn, id)
			assert.True(t, hasAttr(btn, "disabled"), id)
		}

		self := find(doc, func(n *html.Node) bool {
			return attrOf(n, "name") == "crmMode" && attrOf(n, "value") == generator.CRMSelf
		})
		require.NotNil(t, self)
		assert.True(t, hasAttr(self, "checked"))
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	sel := onboarding.NewSelection().WithClientName("Joshua").ToggleProduct(catalog.CBPartials)
	out := renderString(t, views.Preview(generator.PreviewParams{
		Subject: "Re: <draft>",
		Email:   render.Email(onboarding.Assemble(sel)),
	}))

	assert.True(t, strings.HasPrefix(out, `<div id="preview" class="panel preview">`))
	assert.Contains(t, out, "Re: &lt;draft&gt;")
	assert.Contains(t, out, `<div id="email-body"><div style=`)
	assert.Contains(t, out, "Processor Portal Credentials")

	empty := renderString(t, views.Preview(generator.PreviewParams{Subject: "s"}))
	assert.Contains(t, empty, `<div id="email-body"></div>`)
}

func TestToast(t *testing.T) {
	t.Parallel()

	out := renderString(t, views.Toast(generator.ToastParams{Message: "Saved <now>"}))
	assert.Equal(t, `<div class="toast toast-info" role="status" data-on:click="el.remove()">Saved &lt;now&gt;</div>`, out)

	out = renderString(t, views.Toast(generator.ToastParams{Message: "ok", Type: "success"}))
	assert.Contains(t, out, `class="toast toast-success"`)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	out := renderString(t, views.ErrorPage(handler.ErrorPageParams{
		Error:      "unknown product \"<x>\"",
		StatusCode: 400,
		RequestID:  "req-1",
	}))
	assert.Contains(t, out, "<h1>400</h1>")
	assert.Contains(t, out, "unknown product &#34;&lt;x&gt;&#34;")
	assert.Contains(t, out, "<code>req-1</code>")

	out = renderString(t, views.ErrorPage(handler.ErrorPageParams{Error: "gone", StatusCode: 404}))
	assert.NotContains(t, out, "Request ID")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	v := views.Default()
	require.NotNil(t, v)
	assert.NotNil(t, v.Page)
	assert.NotNil(t, v.Preview)
	assert.NotNil(t, v.Toast)
	assert.NotNil(t, v.ErrorPage)
}
