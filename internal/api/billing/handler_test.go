package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paywall-app/internal/domain/billing"
	"paywall-app/internal/domain/checkout"
	"paywall-app/internal/infra/stripegw"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75"
)

type fakeGateway struct {
	prices  map[string]stripe.Price
	custErr error
	subErr  error
	piErr   error

	calls  []string
	piReqs []stripegw.PaymentIntentRequest
}

func (f *fakeGateway) FirstActiveProduct(ctx context.Context) (stripe.Product, error) {
	return stripe.Product{ID: "prod_1", Name: "Premium"}, nil
}

func (f *fakeGateway) ListActivePrices(ctx context.Context, productID string) ([]stripe.Price, error) {
	return nil, nil
}

func (f *fakeGateway) GetPrice(ctx context.Context, priceID string) (stripe.Price, error) {
	f.calls = append(f.calls, "price")
	p, ok := f.prices[priceID]
	if !ok {
		return stripe.Price{}, &stripegw.Error{Kind: stripegw.KindNotFound, Op: "retrieve price", Message: "No such price: '" + priceID + "'"}
	}
	return p, nil
}

func (f *fakeGateway) CreateCustomer(ctx context.Context, email string) (stripe.Customer, error) {
	f.calls = append(f.calls, "customer")
	if f.custErr != nil {
		return stripe.Customer{}, f.custErr
	}
	return stripe.Customer{ID: "cus_1", Email: email}, nil
}

func (f *fakeGateway) CreateSubscription(ctx context.Context, req stripegw.SubscriptionRequest) (stripe.Subscription, error) {
	f.calls = append(f.calls, "subscription")
	if f.subErr != nil {
		return stripe.Subscription{}, f.subErr
	}
	return stripe.Subscription{ID: "sub_1", Status: stripe.SubscriptionStatusIncomplete}, nil
}

func (f *fakeGateway) CreatePaymentIntent(ctx context.Context, req stripegw.PaymentIntentRequest) (stripe.PaymentIntent, error) {
	f.calls = append(f.calls, "payment_intent")
	f.piReqs = append(f.piReqs, req)
	if f.piErr != nil {
		return stripe.PaymentIntent{}, f.piErr
	}
	return stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
}

func newGateway() *fakeGateway {
	return &fakeGateway{prices: map[string]stripe.Price{
		"p1": {
			ID:         "p1",
			UnitAmount: 999,
			Currency:   stripe.CurrencyEUR,
			Recurring:  &stripe.PriceRecurring{Interval: stripe.PriceRecurringIntervalMonth, IntervalCount: 1},
		},
	}}
}

func newRouter(gw stripegw.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := billing.NewService(gw)
	h := NewHandler(svc, checkout.NewOrchestrator(svc, "http://localhost:8080"))

	r := gin.New()
	r.POST("/api/create-customer", h.CreateCustomer)
	r.POST("/api/create-payment-intent", h.CreatePaymentIntent)
	r.POST("/api/create-subscription", h.CreateSubscription)
	r.POST("/api/checkout", h.Checkout)
	return r
}

func post(t *testing.T, r http.Handler, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func TestCreateCustomer_MissingEmail(t *testing.T) {
	for _, body := range []any{map[string]any{"email": ""}, map[string]any{}} {
		gw := newGateway()
		w, out := post(t, newRouter(gw), "/api/create-customer", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email is required", out["error"])
		assert.Empty(t, gw.calls)
	}
}

func TestCreateCustomer_InvalidEmail(t *testing.T) {
	gw := newGateway()
	w, out := post(t, newRouter(gw), "/api/create-customer", map[string]string{"email": "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email address", out["error"])
	assert.Empty(t, gw.calls)
}

func TestCreateCustomer_OK(t *testing.T) {
	gw := newGateway()
	w, out := post(t, newRouter(gw), "/api/create-customer", map[string]string{"email": "buyer@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cus_1", out["customerId"])
}

func TestCreateCustomer_ProviderError(t *testing.T) {
	gw := newGateway()
	gw.custErr = errors.New("boom")
	w, out := post(t, newRouter(gw), "/api/create-customer", map[string]string{"email": "buyer@example.com"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create customer", out["error"])
}

func TestCreatePaymentIntent(t *testing.T) {
	gw := newGateway()
	r := newRouter(gw)

	w, out := post(t, r, "/api/create-payment-intent", map[string]string{"email": "buyer@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Price ID is required", out["error"])
	assert.Empty(t, gw.calls)

	w, out = post(t, r, "/api/create-payment-intent", map[string]string{"priceId": "p1", "email": "buyer@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pi_1_secret", out["clientSecret"])
	require.Len(t, gw.piReqs, 1)
	assert.Equal(t, int64(999), gw.piReqs[0].Amount)
	assert.Equal(t, "eur", gw.piReqs[0].Currency)

	w, out = post(t, r, "/api/create-payment-intent", map[string]string{"priceId": "unknown"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create payment intent", out["error"])
}

func TestCreateSubscription_MissingFields(t *testing.T) {
	gw := newGateway()
	w, out := post(t, newRouter(gw), "/api/create-subscription", map[string]string{"priceId": "p1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Customer ID and Price ID are required", out["error"])
	assert.Empty(t, gw.calls)
}

func TestCreateSubscription_ProviderErrorCarriesMessage(t *testing.T) {
	gw := newGateway()
	gw.subErr = &stripegw.Error{Kind: stripegw.KindInvalidRequest, Op: "create subscription", Message: "No such customer: 'cus_x'"}
	w, out := post(t, newRouter(gw), "/api/create-subscription", map[string]string{"customerId": "cus_x", "priceId": "p1"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create subscription", out["error"])
	assert.Equal(t, "No such customer: 'cus_x'", out["message"])
}

func TestCreateSubscription_OK(t *testing.T) {
	gw := newGateway()
	w, out := post(t, newRouter(gw), "/api/create-subscription", map[string]string{"customerId": "cus_1", "priceId": "p1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sub_1", out["subscriptionId"])
	assert.Equal(t, "pi_1_secret", out["clientSecret"])
	assert.Equal(t, "incomplete", out["status"])
}

// Mirrors the browser: create customer, then subscription, and check the
// intent amount matches the selected price exactly.
func TestThreeCallSequence(t *testing.T) {
	gw := newGateway()
	r := newRouter(gw)

	_, cus := post(t, r, "/api/create-customer", map[string]string{"email": "buyer@example.com"})
	w, sub := post(t, r, "/api/create-subscription", map[string]any{"customerId": cus["customerId"], "priceId": "p1"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sub_1", sub["subscriptionId"])
	assert.Equal(t, []string{"customer", "subscription", "price", "payment_intent"}, gw.calls)
	require.Len(t, gw.piReqs, 1)
	assert.Equal(t, int64(999), gw.piReqs[0].Amount)
	assert.Equal(t, "eur", gw.piReqs[0].Currency)
	assert.Equal(t, "cus_1", gw.piReqs[0].CustomerID)
}

func TestCheckout_OK(t *testing.T) {
	gw := newGateway()
	w, out := post(t, newRouter(gw), "/api/checkout", map[string]string{"email": "buyer@example.com", "priceId": "p1"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cus_1", out["customerId"])
	assert.Equal(t, "sub_1", out["subscriptionId"])
	assert.Equal(t, "pi_1_secret", out["clientSecret"])
	assert.Equal(t, "http://localhost:8080/checkout/success?subscription_id=sub_1", out["returnUrl"])
	assert.Equal(t, string(checkout.StateSubscriptionPending), out["state"])
}

func TestCheckout_BadInput(t *testing.T) {
	cases := []struct {
		name string
		body map[string]string
		want string
	}{
		{"malformed email", map[string]string{"email": "not-an-email", "priceId": "p1"}, "Invalid email address"},
		{"missing email", map[string]string{"priceId": "p1"}, "Email and Price ID are required"},
		{"missing price", map[string]string{"email": "buyer@example.com"}, "Email and Price ID are required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newGateway()
			w, out := post(t, newRouter(gw), "/api/checkout", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, out["error"])
			assert.Empty(t, gw.calls)
		})
	}
}

func TestCheckout_ProviderFailure(t *testing.T) {
	gw := newGateway()
	gw.subErr = errors.New("boom")
	w, out := post(t, newRouter(gw), "/api/checkout", map[string]string{"email": "buyer@example.com", "priceId": "p1"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create subscription", out["error"])
	assert.Equal(t, "boom", out["message"])
	assert.Equal(t, string(checkout.StateFailed), out["state"])
}

func TestCheckout_FailureStatusFollowsProviderKind(t *testing.T) {
	cases := []struct {
		name string
		kind stripegw.Kind
		want int
	}{
		{"card", stripegw.KindCard, http.StatusPaymentRequired},
		{"invalid request", stripegw.KindInvalidRequest, http.StatusBadRequest},
		{"not found", stripegw.KindNotFound, http.StatusNotFound},
		{"api", stripegw.KindAPI, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newGateway()
			gw.subErr = &stripegw.Error{Kind: tc.kind, Op: "create subscription", Message: "Your card was declined."}
			w, out := post(t, newRouter(gw), "/api/checkout", map[string]string{"email": "buyer@example.com", "priceId": "p1"})

			assert.Equal(t, tc.want, w.Code)
			assert.Equal(t, "Your card was declined.", out["message"])
		})
	}
}
