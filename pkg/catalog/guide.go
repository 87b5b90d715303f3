package catalog

import (
	"fmt"
	"strings"
)

// Guide identifies a CRM guide image explaining where to find CRM IDs.
type Guide string

const (
	KNK    Guide = "KNK"
	Sticky Guide = "Sticky"
)

var guides = [...]Guide{KNK, Sticky}

// Guides returns every guide in render order.
func Guides() []Guide {
	out := make([]Guide, len(guides))
	copy(out, guides[:])
	return out
}

// ParseGuide converts an identifier ("KNK", "Sticky") into a Guide.
// Matching is case-insensitive.
func ParseGuide(s string) (Guide, error) {
	s = strings.TrimSpace(s)
	for _, g := range guides {
		if strings.EqualFold(string(g), s) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGuide, s)
}

// GuideFromKey converts a signal key (see Key) into a Guide.
func GuideFromKey(key string) (Guide, error) {
	for _, g := range guides {
		if g.Key() == key {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: key %q", ErrUnknownGuide, key)
}

func (g Guide) String() string { return string(g) }

// Valid reports whether g is one of the enumerated guides.
func (g Guide) Valid() bool { return g.index() >= 0 }

// Key returns the lower-case identifier used for form fields and signals.
func (g Guide) Key() string {
	switch g {
	case KNK:
		return "knk"
	case Sticky:
		return "sticky"
	}
	return ""
}

// Label is the CRM platform name shown next to the guide.
func (g Guide) Label() string {
	switch g {
	case KNK:
		return "Konnektive / Checkout Champ"
	case Sticky:
		return "Sticky"
	}
	panic(fmt.Sprintf("catalog: guide %q is not in the catalog", string(g)))
}

// Asset is the file name of the static guide image.
func (g Guide) Asset() string {
	switch g {
	case KNK:
		return "knk-guide.png"
	case Sticky:
		return "sticky-guide.png"
	}
	panic(fmt.Sprintf("catalog: guide %q is not in the catalog", string(g)))
}

// Alt is the alternative text of the guide image.
func (g Guide) Alt() string {
	switch g {
	case KNK:
		return "Konnektive Guide"
	case Sticky:
		return "Sticky Guide"
	}
	panic(fmt.Sprintf("catalog: guide %q is not in the catalog", string(g)))
}

func (g Guide) index() int {
	for i, c := range guides {
		if c == g {
			return i
		}
	}
	return -1
}

// GuideSet is a set of guides. The zero value is an empty set.
type GuideSet uint8

// NewGuideSet builds a set from gs. It panics on a guide outside the enumeration.
func NewGuideSet(gs ...Guide) GuideSet {
	var s GuideSet
	for _, g := range gs {
		s = s.Add(g)
	}
	return s
}

func (s GuideSet) bit(g Guide) GuideSet {
	i := g.index()
	if i < 0 {
		panic(fmt.Sprintf("catalog: guide %q is not in the catalog", string(g)))
	}
	return 1 << i
}

func (s GuideSet) Add(g Guide) GuideSet    { return s | s.bit(g) }
func (s GuideSet) Remove(g Guide) GuideSet { return s &^ s.bit(g) }
func (s GuideSet) Toggle(g Guide) GuideSet { return s ^ s.bit(g) }

func (s GuideSet) Has(g Guide) bool {
	i := g.index()
	return i >= 0 && s&(1<<i) != 0
}

func (s GuideSet) Empty() bool { return s == 0 }

func (s GuideSet) Len() int { return len(s.Ordered()) }

// Ordered returns the members of s in render order: KNK before Sticky.
func (s GuideSet) Ordered() []Guide {
	out := make([]Guide, 0, len(guides))
	for _, g := range guides {
		if s.Has(g) {
			out = append(out, g)
		}
	}
	return out
}
