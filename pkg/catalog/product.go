package catalog

import (
	"fmt"
	"strings"
)

// Product identifies an onboarding service line by its display name.
type Product string

const (
	CBPartials Product = "CB Partials"
	CBRepsFull Product = "CB Reps - Full"
	Ethoca     Product = "Ethoca"
	RDR        Product = "RDR"
	CDRN       Product = "CDRN"
	MCOM       Product = "MCOM"
	VAMP       Product = "VAMP"
	MCX        Product = "MCX"
	OI         Product = "OI"
)

// canonical is the fixed display order. The bit index of a product in
// ProductSet is its position here.
var canonical = [...]Product{CBPartials, CBRepsFull, Ethoca, RDR, CDRN, MCOM, VAMP, MCX, OI}

// definition is the order the products are declared in the catalog table and
// offered on the form.
var definition = [...]Product{CBPartials, CBRepsFull, Ethoca, CDRN, RDR, VAMP, OI, MCOM, MCX}

// Products returns every product in canonical display order.
func Products() []Product {
	out := make([]Product, len(canonical))
	copy(out, canonical[:])
	return out
}

// FormProducts returns every product in catalog definition order, which is the
// order the selection form lists its checkboxes in.
func FormProducts() []Product {
	out := make([]Product, len(definition))
	copy(out, definition[:])
	return out
}

// ParseProduct converts a display name into a Product.
// Surrounding whitespace is ignored; matching is otherwise exact.
func ParseProduct(s string) (Product, error) {
	p := Product(strings.TrimSpace(s))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProduct, s)
}

// ProductFromKey converts a signal key (see Key) into a Product.
func ProductFromKey(key string) (Product, error) {
	for _, p := range canonical {
		if p.Key() == key {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: key %q", ErrUnknownProduct, key)
}

// Valid reports whether p is one of the enumerated products.
func (p Product) Valid() bool {
	return p.index() >= 0
}

func (p Product) String() string { return string(p) }

// Key returns an identifier-safe name for p, used for form fields and
// browser signals where the display name cannot be used verbatim.
func (p Product) Key() string {
	switch p {
	case CBPartials:
		return "cbPartials"
	case CBRepsFull:
		return "cbRepsFull"
	case Ethoca:
		return "ethoca"
	case RDR:
		return "rdr"
	case CDRN:
		return "cdrn"
	case MCOM:
		return "mcom"
	case VAMP:
		return "vamp"
	case MCX:
		return "mcx"
	case OI:
		return "oi"
	}
	return ""
}

func (p Product) index() int {
	for i, c := range canonical {
		if c == p {
			return i
		}
	}
	return -1
}

// ProductSet is a set of products. The zero value is an empty set.
type ProductSet uint16

// NewProductSet builds a set from ps. It panics on a product outside the
// enumeration; use ParseProduct on untrusted input first.
func NewProductSet(ps ...Product) ProductSet {
	var s ProductSet
	for _, p := range ps {
		s = s.Add(p)
	}
	return s
}

func (s ProductSet) bit(p Product) ProductSet {
	i := p.index()
	if i < 0 {
		panic(fmt.Sprintf("catalog: product %q is not in the catalog", string(p)))
	}
	return 1 << i
}

// Add returns s with p added.
func (s ProductSet) Add(p Product) ProductSet { return s | s.bit(p) }

// Remove returns s without p.
func (s ProductSet) Remove(p Product) ProductSet { return s &^ s.bit(p) }

// Toggle returns s with membership of p flipped.
func (s ProductSet) Toggle(p Product) ProductSet { return s ^ s.bit(p) }

// Has reports whether p is in s. Unknown products are never members.
func (s ProductSet) Has(p Product) bool {
	i := p.index()
	return i >= 0 && s&(1<<i) != 0
}

// HasAny reports whether s contains at least one of ps.
func (s ProductSet) HasAny(ps ...Product) bool {
	for _, p := range ps {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// Len returns the number of products in s.
func (s ProductSet) Len() int {
	n := 0
	for _, p := range canonical {
		if s.Has(p) {
			n++
		}
	}
	return n
}

// Empty reports whether s has no members.
func (s ProductSet) Empty() bool { return s == 0 }

// Ordered returns the members of s in canonical display order.
func (s ProductSet) Ordered() []Product {
	out := make([]Product, 0, len(canonical))
	for _, p := range canonical {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
