// Package catalog holds the fixed onboarding requirement catalog.
//
// The catalog maps each of the nine onboarding products to the ordered list
// of items a client has to supply for it. It is defined once at package level
// and exposes no mutation API.
//
// # Products
//
// Product values are the display names used in the email ("CB Partials",
// "Ethoca", ...). Products returns them in canonical display order, which is
// the order the email always lists them in regardless of how they were
// selected. Untrusted input is converted with ParseProduct or
// ProductFromKey; Requirements itself only accepts the enumerated values and
// panics on anything else.
//
//	p, err := catalog.ParseProduct("CB Partials")
//	if err != nil {
//		return err // catalog.ErrUnknownProduct
//	}
//	for _, req := range catalog.Requirements(p) {
//		fmt.Println(req)
//	}
//
// # Sets
//
// ProductSet and GuideSet are small bitsets. They are comparable values, so a
// selection holding them can be compared with ==, and they yield their members
// in canonical order via Ordered.
//
// # Guides
//
// Guide identifies a CRM guide image (Konnektive / Checkout Champ, or Sticky).
// Guides are always rendered KNK first, then Sticky.
package catalog
