package generator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/pkg/catalog"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
	"github.com/myrcvr/onboardmail/pkg/sanitizer"
)

// CRM modes as carried by the crmMode signal and the crm query parameter.
const (
	CRMManaged = "managed"
	CRMSelf    = "self"
)

// MaxClientNameLength caps the client name in runes.
const MaxClientNameLength = 100

var cleanClientName = sanitizer.Compose(sanitizer.SingleLine, sanitizer.MaxLength(MaxClientNameLength))

// SelectionRequest is the wire form of a selection. DataStar requests and
// JSON clients send the map fields keyed by product and guide keys; plain
// query strings use display names.
type SelectionRequest struct {
	ClientName string          `json:"clientName" query:"client"`
	CRMMode    string          `json:"crmMode" query:"crm"`
	Products   map[string]bool `json:"products,omitempty" query:"-"`
	Guides     map[string]bool `json:"guides,omitempty" query:"-"`

	ProductNames []string `json:"-" query:"product"`
	GuideNames   []string `json:"-" query:"guide"`
}

// Selection validates the request. Unknown products, guides or CRM modes are
// reported per field in a handler.ValidationError.
func (r SelectionRequest) Selection() (onboarding.Selection, error) {
	verr := handler.NewValidationError()
	sel := onboarding.NewSelection().WithClientName(cleanClientName(r.ClientName))

	switch strings.ToLower(strings.TrimSpace(r.CRMMode)) {
	case "", CRMManaged:
	case CRMSelf:
		sel = sel.WithManagedCRM(false)
	default:
		verr.Add("crmMode", fmt.Sprintf("unknown CRM mode %q", r.CRMMode))
	}

	for _, key := range slices.Sorted(maps.Keys(r.Products)) {
		p, err := catalog.ProductFromKey(key)
		if err != nil {
			verr.Add("products", fmt.Sprintf("unknown product %q", key))
			continue
		}
		if r.Products[key] {
			sel.Products = sel.Products.Add(p)
		}
	}
	for _, name := range r.ProductNames {
		p, err := catalog.ParseProduct(name)
		if err != nil {
			verr.Add("product", fmt.Sprintf("unknown product %q", name))
			continue
		}
		sel.Products = sel.Products.Add(p)
	}

	for _, key := range slices.Sorted(maps.Keys(r.Guides)) {
		g, err := catalog.GuideFromKey(key)
		if err != nil {
			verr.Add("guides", fmt.Sprintf("unknown guide %q", key))
			continue
		}
		if r.Guides[key] {
			sel.Guides = sel.Guides.Add(g)
		}
	}
	for _, name := range r.GuideNames {
		g, err := catalog.ParseGuide(name)
		if err != nil {
			verr.Add("guide", fmt.Sprintf("unknown guide %q", name))
			continue
		}
		sel.Guides = sel.Guides.Add(g)
	}

	if err := verr.Err(); err != nil {
		return onboarding.Selection{}, err
	}
	return sel, nil
}

// Signals is the browser-side state of the page.
type Signals struct {
	ClientName string          `json:"clientName"`
	CRMMode    string          `json:"crmMode"`
	Products   map[string]bool `json:"products"`
	Guides     map[string]bool `json:"guides"`
	CanCopy    bool            `json:"canCopy"`
	Copied     bool            `json:"copied"`
	CopyError  string          `json:"copyError"`
}

// SignalsFor returns the initial signals for sel. Every product and guide key
// is present so checkbox bindings start defined.
func SignalsFor(sel onboarding.Selection) Signals {
	s := Signals{
		ClientName: sel.ClientName,
		CRMMode:    CRMManaged,
		Products:   make(map[string]bool, len(catalog.Products())),
		Guides:     make(map[string]bool, len(catalog.Guides())),
		CanCopy:    sel.CanCopy(),
	}
	if !sel.ManagedCRM {
		s.CRMMode = CRMSelf
	}
	for _, p := range catalog.Products() {
		s.Products[p.Key()] = sel.Products.Has(p)
	}
	for _, g := range catalog.Guides() {
		s.Guides[g.Key()] = sel.Guides.Has(g)
	}
	return s
}

// previewSignals are patched alongside every preview.
type previewSignals struct {
	CanCopy bool `json:"canCopy"`
}
