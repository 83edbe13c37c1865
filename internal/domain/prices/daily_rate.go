package prices

import (
	"strconv"
	"strings"
)

// DefaultBillingDays is assumed when a price carries no "days" metadata.
const DefaultBillingDays = 30

// BillingDays returns the number of days a price covers.
// Priority:
// 1. metadata["days"] when it is a positive integer
// 2. DefaultBillingDays
func BillingDays(p Price) int64 {
	raw := strings.TrimSpace(p.Metadata["days"])
	if raw == "" {
		return DefaultBillingDays
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return DefaultBillingDays
	}
	return n
}

// DailyRate is the unit amount spread over BillingDays, rounded half up to a
// whole minor unit.
func DailyRate(p Price) int64 {
	days := BillingDays(p)
	if p.UnitAmount < 0 {
		return -((-p.UnitAmount*2 + days) / (2 * days))
	}
	return (p.UnitAmount*2 + days) / (2 * days)
}
