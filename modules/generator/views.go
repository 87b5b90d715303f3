package generator

import (
	"github.com/a-h/templ"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/pkg/catalog"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
)

// Views renders the module's HTML. views.Default provides the stock set.
type Views struct {
	Page      func(PageParams) templ.Component
	Preview   func(PreviewParams) templ.Component
	Toast     func(ToastParams) templ.Component
	ErrorPage func(handler.ErrorPageParams) templ.Component
}

type PageParams struct {
	Title       string
	Signals     Signals
	Form        FormParams
	Preview     PreviewParams
	SendEnabled bool
}

type FormParams struct {
	ClientName string
	ManagedCRM bool
	Products   []Option
	Guides     []Option
}

// Option is one checkbox in the form.
type Option struct {
	Key     string
	Label   string
	Checked bool
}

type PreviewParams struct {
	Subject string
	Email   templ.Component
	CanCopy bool
}

type ToastParams struct {
	Message string
	Type    string // "success", "warning" or "error"
}

func formParams(sel onboarding.Selection) FormParams {
	f := FormParams{ClientName: sel.ClientName, ManagedCRM: sel.ManagedCRM}
	for _, p := range catalog.FormProducts() {
		f.Products = append(f.Products, Option{Key: p.Key(), Label: p.String(), Checked: sel.Products.Has(p)})
	}
	for _, g := range catalog.Guides() {
		f.Guides = append(f.Guides, Option{Key: g.Key(), Label: g.Label(), Checked: sel.Guides.Has(g)})
	}
	return f
}
