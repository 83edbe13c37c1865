package stripegw

import (
	"context"

	"github.com/stripe/stripe-go/v75"
)

// Gateway abstracts the Stripe operations the checkout needs.
// Methods return values (not pointers) so fakes stay simple in tests.
type Gateway interface {
	// FirstActiveProduct returns the first active product, or an Error of
	// KindNotFound when the account has none.
	FirstActiveProduct(ctx context.Context) (stripe.Product, error)
	ListActivePrices(ctx context.Context, productID string) ([]stripe.Price, error)
	GetPrice(ctx context.Context, priceID string) (stripe.Price, error)
	CreateCustomer(ctx context.Context, email string) (stripe.Customer, error)
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (stripe.Subscription, error)
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (stripe.PaymentIntent, error)
}

// SubscriptionRequest creates a subscription left in the incomplete state
// until its first payment is confirmed client-side.
type SubscriptionRequest struct {
	CustomerID string
	PriceID    string
}

type PaymentIntentRequest struct {
	Amount   int64
	Currency string
	// CustomerID is optional; the pre-flight intent has no customer yet.
	CustomerID string
	// OffSession keeps the payment method for future off-session charges.
	OffSession bool
	Metadata   map[string]string
}
