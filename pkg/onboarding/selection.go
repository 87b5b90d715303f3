package onboarding

import (
	"strings"

	"github.com/myrcvr/onboardmail/pkg/catalog"
)

// PlaceholderName stands in for the client name until one is entered.
const PlaceholderName = "[Client Name]"

// Selection is the operator's current choice on the form.
// The zero value is a self-managed CRM selection; use NewSelection for the
// form defaults.
type Selection struct {
	ClientName string
	ManagedCRM bool
	Products   catalog.ProductSet
	Guides     catalog.GuideSet
}

// NewSelection returns the form defaults: managed CRM, nothing selected.
func NewSelection() Selection {
	return Selection{ManagedCRM: true}
}

func (s Selection) WithClientName(name string) Selection {
	s.ClientName = name
	return s
}

func (s Selection) WithManagedCRM(managed bool) Selection {
	s.ManagedCRM = managed
	return s
}

// ToggleProduct flips p in the product set. Toggling twice restores s.
func (s Selection) ToggleProduct(p catalog.Product) Selection {
	s.Products = s.Products.Toggle(p)
	return s
}

// ToggleGuide flips g in the guide set.
func (s Selection) ToggleGuide(g catalog.Guide) Selection {
	s.Guides = s.Guides.Toggle(g)
	return s
}

// OrderedProducts returns the selected products in canonical display order.
func (s Selection) OrderedProducts() []catalog.Product {
	return s.Products.Ordered()
}

// DisplayName is the name used in the greeting. The name is shown as typed;
// only an empty name falls back to the placeholder.
func (s Selection) DisplayName() string {
	if s.ClientName == "" {
		return PlaceholderName
	}
	return s.ClientName
}

// HasClientName reports whether the client name has any non-blank content.
func (s Selection) HasClientName() bool {
	return strings.TrimSpace(s.ClientName) != ""
}

// CanCopy reports whether the draft is complete enough to be copied or sent:
// a client name and at least one product.
func (s Selection) CanCopy() bool {
	return s.HasClientName() && !s.Products.Empty()
}
