package billing

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"paywall-app/internal/domain/prices"
	"paywall-app/internal/infra/stripegw"

	"github.com/go-playground/validator/v10"
)

// Service defines the checkout operations backed by the payment provider.
// Nothing is stored locally; every call is a pass-through to the gateway.
type Service interface {
	ListPrices(ctx context.Context) ([]prices.Price, error)
	CreateCustomer(ctx context.Context, email string) (string, error)
	CreatePaymentIntent(ctx context.Context, in PaymentIntentInput) (string, error)
	CreateSubscription(ctx context.Context, customerID, priceID string) (SubscriptionResult, error)
}

type PaymentIntentInput struct {
	PriceID string
	Email   string
}

// SubscriptionResult carries what the browser needs to confirm the first
// payment. ClientSecret must never be logged.
type SubscriptionResult struct {
	SubscriptionID string
	ClientSecret   string
	Status         string
}

type serviceImpl struct {
	gw       stripegw.Gateway
	validate *validator.Validate
}

func NewService(g stripegw.Gateway) Service {
	return serviceImpl{gw: g, validate: validator.New()}
}

// ListPrices returns the active prices of the single active product, in
// provider order.
func (s serviceImpl) ListPrices(ctx context.Context) ([]prices.Price, error) {
	product, err := s.gw.FirstActiveProduct(ctx)
	if err != nil {
		var gwErr *stripegw.Error
		if errors.As(err, &gwErr) && gwErr.Kind == stripegw.KindNotFound {
			return nil, opErr("list prices", ErrNoActiveProduct, err)
		}
		return nil, opErr("list prices", ErrGateway, err)
	}

	list, err := s.gw.ListActivePrices(ctx, product.ID)
	if err != nil {
		return nil, opErr("list prices", ErrGateway, err)
	}
	return prices.FromStripeList(list, product.Name), nil
}

func (s serviceImpl) CreateCustomer(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", opErr("create customer", ErrValidation, errors.New("email is required"))
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return "", opErr("create customer", ErrValidation, errors.New("invalid email address"))
	}

	cus, err := s.gw.CreateCustomer(ctx, email)
	if err != nil {
		return "", opErr("create customer", ErrCreateCustomer, err)
	}
	slog.Info("customer created", "customer_id", cus.ID)
	return cus.ID, nil
}

// CreatePaymentIntent prepares the stand-alone intent the checkout form is
// mounted with. Amount and currency are copied from the price unchanged.
func (s serviceImpl) CreatePaymentIntent(ctx context.Context, in PaymentIntentInput) (string, error) {
	if strings.TrimSpace(in.PriceID) == "" {
		return "", opErr("create payment intent", ErrValidation, errors.New("price id is required"))
	}

	price, err := s.gw.GetPrice(ctx, in.PriceID)
	if err != nil {
		return "", opErr("create payment intent", ErrCreatePaymentIntent, err)
	}

	pi, err := s.gw.CreatePaymentIntent(ctx, stripegw.PaymentIntentRequest{
		Amount:   price.UnitAmount,
		Currency: string(price.Currency),
		Metadata: map[string]string{
			"priceId": in.PriceID,
			"email":   in.Email,
		},
	})
	if err != nil {
		return "", opErr("create payment intent", ErrCreatePaymentIntent, err)
	}
	return pi.ClientSecret, nil
}

// CreateSubscription creates an incomplete subscription and the payment
// intent that must be confirmed to activate it. If the intent cannot be
// created the subscription is left incomplete at the provider; nothing is
// rolled back.
func (s serviceImpl) CreateSubscription(ctx context.Context, customerID, priceID string) (SubscriptionResult, error) {
	if strings.TrimSpace(customerID) == "" || strings.TrimSpace(priceID) == "" {
		return SubscriptionResult{}, opErr("create subscription", ErrValidation, errors.New("customer id and price id are required"))
	}

	sub, err := s.gw.CreateSubscription(ctx, stripegw.SubscriptionRequest{
		CustomerID: customerID,
		PriceID:    priceID,
	})
	if err != nil {
		return SubscriptionResult{}, opErr("create subscription", ErrCreateSubscription, err)
	}
	slog.Info("subscription created", "subscription_id", sub.ID, "customer_id", customerID)

	price, err := s.gw.GetPrice(ctx, priceID)
	if err != nil {
		slog.Warn("subscription left incomplete", "subscription_id", sub.ID, "err", err)
		return SubscriptionResult{}, opErr("create subscription", ErrCreateSubscription, err)
	}

	pi, err := s.gw.CreatePaymentIntent(ctx, stripegw.PaymentIntentRequest{
		Amount:     price.UnitAmount,
		Currency:   string(price.Currency),
		CustomerID: customerID,
		OffSession: true,
		Metadata: map[string]string{
			"subscription_id": sub.ID,
		},
	})
	if err != nil {
		slog.Warn("subscription left incomplete", "subscription_id", sub.ID, "err", err)
		return SubscriptionResult{}, opErr("create subscription", ErrCreateSubscription, err)
	}
	slog.Info("payment intent created", "payment_intent_id", pi.ID, "subscription_id", sub.ID)

	return SubscriptionResult{
		SubscriptionID: sub.ID,
		ClientSecret:   pi.ClientSecret,
		Status:         stripegw.NormalizeSubscriptionStatus(sub.Status),
	}, nil
}
