package billing

import (
	"context"

	"paywall-app/internal/infra/stripegw"

	"github.com/stripe/stripe-go/v75"
)

// fakeGateway records calls in order and returns canned values.
type fakeGateway struct {
	product    stripe.Product
	productErr error
	prices     []stripe.Price
	pricesErr  error
	priceByID  map[string]stripe.Price
	customer   stripe.Customer
	custErr    error
	sub        stripe.Subscription
	subErr     error
	pi         stripe.PaymentIntent
	piErr      error

	calls   []string
	subReqs []stripegw.SubscriptionRequest
	piReqs  []stripegw.PaymentIntentRequest
	emails  []string
}

func (f *fakeGateway) FirstActiveProduct(ctx context.Context) (stripe.Product, error) {
	f.calls = append(f.calls, "product")
	return f.product, f.productErr
}

func (f *fakeGateway) ListActivePrices(ctx context.Context, productID string) ([]stripe.Price, error) {
	f.calls = append(f.calls, "prices:"+productID)
	return f.prices, f.pricesErr
}

func (f *fakeGateway) GetPrice(ctx context.Context, priceID string) (stripe.Price, error) {
	f.calls = append(f.calls, "price:"+priceID)
	p, ok := f.priceByID[priceID]
	if !ok {
		return stripe.Price{}, &stripegw.Error{Kind: stripegw.KindNotFound, Op: "retrieve price", Message: "No such price: '" + priceID + "'"}
	}
	return p, nil
}

func (f *fakeGateway) CreateCustomer(ctx context.Context, email string) (stripe.Customer, error) {
	f.calls = append(f.calls, "customer")
	f.emails = append(f.emails, email)
	return f.customer, f.custErr
}

func (f *fakeGateway) CreateSubscription(ctx context.Context, req stripegw.SubscriptionRequest) (stripe.Subscription, error) {
	f.calls = append(f.calls, "subscription")
	f.subReqs = append(f.subReqs, req)
	return f.sub, f.subErr
}

func (f *fakeGateway) CreatePaymentIntent(ctx context.Context, req stripegw.PaymentIntentRequest) (stripe.PaymentIntent, error) {
	f.calls = append(f.calls, "payment_intent")
	f.piReqs = append(f.piReqs, req)
	return f.pi, f.piErr
}
