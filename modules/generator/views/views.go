// Package views holds the stock HTML for the generator module.
package views

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/pkg/markup"
)

// DataStarScript is the client bundle loaded by the page.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// Default returns the stock views.
func Default() *generator.Views {
	return &generator.Views{
		Page:      Page,
		Preview:   Preview,
		Toast:     Toast,
		ErrorPage: ErrorPage,
	}
}

func Page(p generator.PageParams) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		signals, err := json.Marshal(p.Signals)
		if err != nil {
			w.Fail(err)
			return
		}

		w.Raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.Text(p.Title)
		w.Raw(`</title><script type="module" src="` + DataStarScript + `"></script>`)
		w.Raw(`<style>` + pageCSS + `</style>`)
		w.Raw(`<script>` + clipboardJS + `</script>`)
		w.Raw(`</head><body`)
		w.Attr("data-signals", string(signals))
		w.Raw(`><main class="layout">`)

		w.Raw(`<section class="panel config"><h2>`)
		w.Text(p.Title)
		w.Raw(`</h2>`)
		form(w, p.Form)
		w.Raw(`</section>`)

		w.Raw(`<section class="output"><div class="output-header"><h2>Real-Time Email Preview</h2><div class="actions">`)
		if p.SendEnabled {
			w.Raw(`<button type="button" id="send" class="secondary" data-attr:disabled="!$canCopy" data-on:click="@post('/send')"`)
			w.BoolAttr("disabled", !p.Preview.CanCopy)
			w.Raw(`>Send to inbox</button>`)
		}
		w.Raw(`<button type="button" id="copy" data-attr:disabled="!$canCopy"`)
		w.Attr("data-on:click", copyAction)
		w.BoolAttr("disabled", !p.Preview.CanCopy)
		w.Raw(`>Copy</button></div></div>`)
		w.Raw(`<p class="copy-error" style="display: none" data-show="$copyError != ''" data-text="$copyError"></p>`)
		w.Component(ctx, Preview(p.Preview))
		w.Raw(`</section></main>`)

		w.Raw(`<div id="toast-container"></div>`)
		w.Raw(`<div class="modal" style="display: none" data-show="$copied"><div class="modal-card">`)
		w.Raw(`<div class="check">&#10003;</div><h3>Copied</h3><p>Ready for sending.</p></div></div>`)
		w.Raw(`</body></html>`)
	})
}

func form(w *markup.Writer, f generator.FormParams) {
	w.Raw(`<form id="selection" data-on:input__debounce.200ms="@get('/preview')" data-on:submit__prevent="">`)

	w.Raw(`<div class="field"><label for="client-name">Client Name</label>`)
	w.Raw(`<input type="text" id="client-name" name="clientName" placeholder="e.g., Joshua" autocomplete="off" data-bind="clientName"`)
	w.Attr("value", f.ClientName)
	w.Raw(`></div>`)

	w.Raw(`<div class="field"><span class="legend">CRM Management</span><div class="row">`)
	radio(w, generator.CRMManaged, "Managed CRM", f.ManagedCRM)
	radio(w, generator.CRMSelf, "Self-CRM", !f.ManagedCRM)
	w.Raw(`</div></div>`)

	w.Raw(`<div class="field"><span class="legend">Products Required</span><div class="column">`)
	for _, o := range f.Products {
		checkbox(w, "products."+o.Key, o)
	}
	w.Raw(`</div></div>`)

	w.Raw(`<div class="field guides" id="guides"`)
	if !f.ManagedCRM {
		w.Raw(` style="display: none"`)
	}
	w.Raw(` data-show="$crmMode == 'managed'">`)
	w.Raw(`<span class="legend">CRM Guide Images to Include</span><div class="column">`)
	for _, o := range f.Guides {
		checkbox(w, "guides."+o.Key, o)
	}
	w.Raw(`</div></div></form>`)
}

func radio(w *markup.Writer, value, label string, checked bool) {
	w.Raw(`<label class="choice"><input type="radio" name="crmMode"`)
	w.Attr("value", value)
	w.Raw(` data-bind="crmMode"`)
	w.BoolAttr("checked", checked)
	w.Raw(`> `)
	w.Text(label)
	w.Raw(`</label>`)
}

func checkbox(w *markup.Writer, signal string, o generator.Option) {
	w.Raw(`<label class="choice"><input type="checkbox"`)
	w.Attr("name", signal)
	w.Attr("data-bind", signal)
	w.BoolAttr("checked", o.Checked)
	w.Raw(`> `)
	w.Text(o.Label)
	w.Raw(`</label>`)
}

// Preview renders the email panel. The #email-body element is what the Copy
// button places on the clipboard.
func Preview(p generator.PreviewParams) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		w.Raw(`<div id="preview" class="panel preview"><p class="subject"><span>Subject:</span> `)
		w.Text(p.Subject)
		w.Raw(`</p><div id="email-body">`)
		w.Component(ctx, p.Email)
		w.Raw(`</div></div>`)
	})
}

func Toast(p generator.ToastParams) templ.Component {
	return markup.Component(func(_ context.Context, w *markup.Writer) {
		kind := p.Type
		if kind == "" {
			kind = "info"
		}
		w.Raw(`<div`)
		w.Attr("class", "toast toast-"+kind)
		w.Raw(` role="status" data-on:click="el.remove()">`)
		w.Text(p.Message)
		w.Raw(`</div>`)
	})
}

func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return markup.Component(func(_ context.Context, w *markup.Writer) {
		code := strconv.Itoa(p.StatusCode)
		w.Raw(`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>` + code + `</title>`)
		w.Raw(`<style>` + pageCSS + `</style></head><body><main class="error-page panel">`)
		w.Raw(`<h1>` + code + `</h1><p>`)
		w.Text(p.Error)
		w.Raw(`</p>`)
		if p.RequestID != "" {
			w.Raw(`<p class="request-id">Request ID: <code>`)
			w.Text(p.RequestID)
			w.Raw(`</code></p>`)
		}
		w.Raw(`<p><a href="/">Start over</a></p></main></body></html>`)
	})
}
