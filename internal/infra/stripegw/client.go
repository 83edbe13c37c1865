package stripegw

import (
	"context"

	"github.com/stripe/stripe-go/v75"
	stripeclient "github.com/stripe/stripe-go/v75/client"
)

// client is the Stripe SDK-backed implementation of the gateway.
type client struct {
	api *stripeclient.API
}

// New builds the process-wide Stripe handle. Call it once at startup and
// pass the result to whatever needs it.
func New(secretKey string) Gateway {
	return &client{api: stripeclient.New(secretKey, nil)}
}

func (c *client) FirstActiveProduct(ctx context.Context) (stripe.Product, error) {
	params := &stripe.ProductListParams{Active: stripe.Bool(true)}
	params.Context = ctx
	params.Limit = stripe.Int64(1)
	params.Single = true

	it := c.api.Products.List(params)
	if it.Next() {
		return *it.Product(), nil
	}
	if err := it.Err(); err != nil {
		return stripe.Product{}, wrap("list products", err)
	}
	return stripe.Product{}, notFound("list products", "no active products found")
}

func (c *client) ListActivePrices(ctx context.Context, productID string) ([]stripe.Price, error) {
	params := &stripe.PriceListParams{
		Product: stripe.String(productID),
		Active:  stripe.Bool(true),
	}
	params.Context = ctx
	params.AddExpand("data.product")

	it := c.api.Prices.List(params)
	out := []stripe.Price{}
	for it.Next() {
		out = append(out, *it.Price())
	}
	if err := it.Err(); err != nil {
		return nil, wrap("list prices", err)
	}
	return out, nil
}

func (c *client) GetPrice(ctx context.Context, priceID string) (stripe.Price, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx

	p, err := c.api.Prices.Get(priceID, params)
	if err != nil {
		return stripe.Price{}, wrap("retrieve price", err)
	}
	if p == nil {
		return stripe.Price{}, notFound("retrieve price", "price not found")
	}
	return *p, nil
}

func (c *client) CreateCustomer(ctx context.Context, email string) (stripe.Customer, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.Context = ctx

	cus, err := c.api.Customers.New(params)
	if err != nil {
		return stripe.Customer{}, wrap("create customer", err)
	}
	return *cus, nil
}

func (c *client) CreateSubscription(ctx context.Context, req SubscriptionRequest) (stripe.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(req.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(req.PriceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.Context = ctx
	params.AddExpand("latest_invoice")

	sub, err := c.api.Subscriptions.New(params)
	if err != nil {
		return stripe.Subscription{}, wrap("create subscription", err)
	}
	return *sub, nil
}

func (c *client) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.CustomerID != "" {
		params.Customer = stripe.String(req.CustomerID)
	}
	if req.OffSession {
		params.SetupFutureUsage = stripe.String("off_session")
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return stripe.PaymentIntent{}, wrap("create payment intent", err)
	}
	return *pi, nil
}
