package onboarding

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/myrcvr/onboardmail/pkg/catalog"
)

// crmOnlyTerms mark requirements that only apply when the CRM is managed for
// the client. Matching is a case-folded substring test.
var crmOnlyTerms = []string{
	"crm credentials",
	"mid alias",
	"crm id",
	"managed crm actions",
}

// RequiresManagedCRM reports whether req only applies under a managed CRM.
func RequiresManagedCRM(req string) bool {
	folded := cases.Fold().String(req)
	for _, term := range crmOnlyTerms {
		if strings.Contains(folded, term) {
			return true
		}
	}
	return false
}

// ProductRequirements returns the requirements of p that apply to the given
// CRM mode, in catalog order.
func ProductRequirements(p catalog.Product, managedCRM bool) []string {
	reqs := catalog.Requirements(p)
	if managedCRM {
		return reqs
	}
	kept := reqs[:0]
	for _, req := range reqs {
		if !RequiresManagedCRM(req) {
			kept = append(kept, req)
		}
	}
	return kept
}
