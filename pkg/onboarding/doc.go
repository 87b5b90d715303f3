// Package onboarding assembles the onboarding email from an operator's
// selection.
//
// Selection is a plain comparable value: client name, CRM mode and the
// chosen products and guides. Assemble turns it into a Document, an ordered
// list of typed blocks (paragraphs, bold labels, lists, images, line breaks
// and the placeholder). Assemble is pure: the same Selection always yields
// the same Document, so the presentation layer can call it on every keystroke
// and compare or re-render freely.
//
//	sel := onboarding.NewSelection().
//		WithClientName("Joshua").
//		ToggleProduct(catalog.CBPartials)
//	doc := onboarding.Assemble(sel)
//	if doc.Has(onboarding.SectionAccess) {
//		// processor and gateway access instructions are included
//	}
//
// Rendering the Document to HTML or plain text lives in package render.
package onboarding
