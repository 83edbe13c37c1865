package stripegw

import (
	"strings"

	"github.com/stripe/stripe-go/v75"
)

// NormalizeSubscriptionStatus folds Stripe's subscription states into the
// few the checkout reports back: incomplete, active, trialing, past_due,
// canceled or none.
func NormalizeSubscriptionStatus(s stripe.SubscriptionStatus) string {
	v := strings.TrimSpace(string(s))
	switch v {
	case "":
		return "none"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return v
	}
}
