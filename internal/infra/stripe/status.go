package stripe

import "strings"

// NormalizeStatus collapses Stripe subscription statuses to the small set the
// read path reports. Used ONLY for display; the stored status stays verbatim.
func NormalizeStatus(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "none"
	}
	switch s {
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return s
	}
}
