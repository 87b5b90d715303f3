package catalog

import "fmt"

// OrderInsightAPI is the one requirement rendered as a link to the Order
// Insight setup guide instead of plain text.
const OrderInsightAPI = "Order Insight Direct API"

const (
	visaARNFallback   = "BIN and CAID (If unavailable, provide a Visa ARN starting with 2 or 7 from the processor portal)"
	uniqueDescriptor  = "Descriptor (unique and not enrolled in Ethoca)"
	processorPortal   = "Processor Portal Credentials"
	gatewayPortal     = "Gateway Portal Credentials"
	customerServiceNo = "Customer Service Number"
)

// Requirements returns the ordered requirements for p. The returned slice is
// a fresh copy. It panics if p is not an enumerated product: callers are
// expected to have parsed untrusted input with ParseProduct.
func Requirements(p Product) []string {
	switch p {
	case CBPartials:
		return []string{processorPortal}
	case CBRepsFull:
		return []string{processorPortal, gatewayPortal, "CRM Credentials", "Domain/Product Web Page"}
	case Ethoca:
		return []string{
			"Descriptor",
			customerServiceNo,
			"If we manage refunds: Gateway Portal Credentials",
			"If we have CRM access: CRM Credentials, MID Aliases, and Gateway/CRM IDs",
		}
	case CDRN:
		return []string{"Descriptor", customerServiceNo, gatewayPortal}
	case RDR:
		return []string{"DBA", visaARNFallback}
	case VAMP:
		return []string{"DBA", visaARNFallback}
	case OI:
		return []string{OrderInsightAPI}
	case MCOM:
		return []string{
			uniqueDescriptor,
			"Gateway",
			"CRM",
			"Acquirer/bank needs to be either FFB (Fresno) or CBSL (Central Bank of St. Louis)",
		}
	case MCX:
		return []string{uniqueDescriptor}
	}
	panic(fmt.Sprintf("catalog: no requirements defined for product %q", string(p)))
}
