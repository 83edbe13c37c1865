package prices

import (
	"strings"

	"github.com/stripe/stripe-go/v75"
)

// FromStripe normalizes a provider price. productName is used when the price
// has no nickname of its own.
func FromStripe(p stripe.Price, productName string) Price {
	nickname := p.Nickname
	if nickname == "" {
		nickname = productName
	}

	var rec *Recurrence
	if p.Recurring != nil {
		rec = &Recurrence{
			Interval:      string(p.Recurring.Interval),
			IntervalCount: p.Recurring.IntervalCount,
		}
	}

	meta := make(map[string]string, len(p.Metadata))
	for k, v := range p.Metadata {
		meta[k] = v
	}

	return Price{
		ID:         p.ID,
		Nickname:   nickname,
		UnitAmount: p.UnitAmount,
		Currency:   strings.ToLower(string(p.Currency)),
		Recurring:  rec,
		Metadata:   meta,
	}
}

// FromStripeList keeps provider order.
func FromStripeList(list []stripe.Price, productName string) []Price {
	out := make([]Price, 0, len(list))
	for _, p := range list {
		out = append(out, FromStripe(p, productName))
	}
	return out
}
