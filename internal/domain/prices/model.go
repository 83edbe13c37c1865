package prices

// Interval units with their own wording on the paywall. Stripe also sends
// "day" and "week".
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// Price is the display-ready view of a provider price. Amounts are integer
// minor units (cents); nothing here is persisted.
type Price struct {
	ID         string            `json:"id"`
	Nickname   string            `json:"nickname"`
	UnitAmount int64             `json:"unit_amount"`
	Currency   string            `json:"currency"`
	Recurring  *Recurrence       `json:"recurring"`
	Metadata   map[string]string `json:"metadata"`
}

type Recurrence struct {
	Interval      string `json:"interval"`
	IntervalCount int64  `json:"interval_count"`
}

// OneTime reports whether the price has no recurrence.
func (p Price) OneTime() bool { return p.Recurring == nil }
