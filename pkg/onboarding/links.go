package onboarding

// Fixed external references. These must match the institutional
// documentation verbatim.
const (
	OrderInsightURL  = "https://dispute.myrcvr.com/docs/pages/order-insight-direct"
	OrderInsightText = "Order Insight Direct API setup guide"
)

// Link is a named external URL.
type Link struct {
	Name string
	URL  string
}

// CRMSetupGuides are the CRM access setup guides, in render order.
var CRMSetupGuides = []Link{
	{Name: "Sticky", URL: "https://myrcvr.atlassian.net/wiki/external/OGZmZDAyNDg0ODFkNDY4MmE2YzEwOWY3YWQ5MzliMmM"},
	{Name: "Konnektive", URL: "https://myrcvr.atlassian.net/wiki/external/YWNhMGE5MGYwZjVmNGUyNjkyNTZmNmZmZTkxMmQyZDc"},
	{Name: "Checkout Champ", URL: "https://myrcvr.atlassian.net/wiki/external/NTZjOWIyYzJkNzdlNDdmZjg1MWJjN2FiZjhkNDgyZTA"},
}

// AccessEmails are the default user-access addresses for processors and gateways.
var AccessEmails = []string{"2fa@myrcvr.com", "rcvr2fa@gmail.com"}
