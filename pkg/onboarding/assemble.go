package onboarding

import (
	"strings"

	"github.com/myrcvr/onboardmail/pkg/catalog"
)

// Fixed copy of the email body.
const (
	IntroText       = "Here's a standardized checklist to streamline the onboarding process and eliminate the back-and-forth relay of information."
	PlaceholderText = "[Select products on the left to generate the requirements checklist...]"
	GuideHeading    = "Guide to identify CRM IDs:"
	CRMLinksText    = "To set up our CRM access, here are our guides:"
	AccessText      = "When granting user access, you can usually default to the following email addresses for processors and gateways:"
	AccessFollowUp  = "Please let us know the username of an account whenever you send us an invite."
	ClosingText     = "That should cover everything."
	ThanksText      = "Thank you."
)

// accessProducts need processor or gateway portal access regardless of CRM mode.
var accessProducts = []catalog.Product{catalog.CBRepsFull, catalog.CBPartials, catalog.CDRN}

// Assemble builds the email body for sel.
func Assemble(sel Selection) Document {
	ordered := sel.OrderedProducts()
	b := &builder{}

	b.in(SectionGreeting).text("Hello " + sel.DisplayName() + ",")
	b.lineBreak()
	b.in(SectionIntro).text(IntroText)

	b.in(SectionRequirements)
	if len(ordered) == 0 {
		b.placeholder(PlaceholderText)
	} else {
		requirements(b, ordered, sel.ManagedCRM)
	}

	if IncludesGuides(sel) {
		guideImages(b.in(SectionGuides), sel.Guides)
	}
	if IncludesCRMLinks(sel) {
		crmLinks(b.in(SectionCRMLinks))
	}
	if IncludesAccess(sel) {
		access(b.in(SectionAccess))
	}

	b.in(SectionSignOff).lineBreak()
	b.text(ClosingText)
	b.lineBreak()
	b.text(ThanksText)

	return Document{Blocks: b.blocks}
}

// IncludesGuides reports whether the CRM guide images are part of the email.
func IncludesGuides(sel Selection) bool {
	return sel.ManagedCRM && !sel.Products.Empty() && !sel.Guides.Empty()
}

// IncludesCRMLinks reports whether the CRM setup guide links are part of the email.
func IncludesCRMLinks(sel Selection) bool {
	return sel.ManagedCRM && !sel.Products.Empty()
}

// IncludesAccess reports whether the processor and gateway access
// instructions are part of the email.
func IncludesAccess(sel Selection) bool {
	if sel.Products.HasAny(accessProducts...) {
		return true
	}
	return sel.ManagedCRM && sel.Products.Has(catalog.Ethoca)
}

func requirements(b *builder, ordered []catalog.Product, managedCRM bool) {
	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.String()
	}
	b.paragraph(
		plain("Your current products are primarily "),
		bold(strings.Join(names, ", ")),
		plain(". Please pay special attention to these requirements:"),
	)
	b.lineBreak()

	for _, p := range ordered {
		reqs := ProductRequirements(p, managedCRM)
		if len(reqs) == 0 {
			continue
		}
		items := make([]Span, len(reqs))
		for i, req := range reqs {
			items[i] = requirementSpan(req)
		}
		b.label(p.String())
		b.list(items...)
	}
}

func requirementSpan(req string) Span {
	if req == catalog.OrderInsightAPI {
		return Span{Text: OrderInsightText, Href: OrderInsightURL}
	}
	return plain(req)
}

func guideImages(b *builder, guides catalog.GuideSet) {
	b.paragraph(
		plain("We require "),
		bold("MID Aliases"),
		plain(" and "),
		bold("Gateway / CRM IDs"),
		plain(" to pull Sales data from your CRM."),
	)
	b.lineBreak()
	b.label(GuideHeading)

	captioned := guides.Len() > 1
	for _, g := range guides.Ordered() {
		img := Image{Asset: g.Asset(), Alt: g.Alt()}
		if captioned {
			img.Caption = g.Label() + ":"
		}
		b.image(img)
	}
}

func crmLinks(b *builder) {
	b.text(CRMLinksText)
	items := make([]Span, len(CRMSetupGuides))
	for i, l := range CRMSetupGuides {
		items[i] = Span{Text: l.Name, Href: l.URL}
	}
	b.list(items...)
}

func access(b *builder) {
	b.text(AccessText)
	items := make([]Span, len(AccessEmails))
	for i, addr := range AccessEmails {
		items[i] = plain(addr)
	}
	b.list(items...)
	b.text(AccessFollowUp)
}

// Subject is the subject line used when the draft is delivered by email.
func Subject(sel Selection) string {
	return "Onboarding requirements for " + sel.DisplayName()
}
