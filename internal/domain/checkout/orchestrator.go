package checkout

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"paywall-app/internal/domain/billing"
)

// State is where a single checkout attempt currently stands.
type State string

const (
	StateIdle                State = "idle"
	StateCustomerCreated     State = "customer_created"
	StateSubscriptionPending State = "subscription_pending"
	StateConfirmed           State = "confirmed"
	StateFailed              State = "failed"
)

// Step names the call that moved (or failed to move) an attempt forward.
type Step string

const (
	StepCreateCustomer     Step = "create_customer"
	StepCreateSubscription Step = "create_subscription"
	StepConfirm            Step = "confirm"
)

// Confirmation is handed to the browser's Stripe.js confirmPayment call.
// The provider redirects to ReturnURL with a redirect_status parameter.
type Confirmation struct {
	ClientSecret string
	ReturnURL    string
}

// Attempt records one pass through the sequence. Attempts are never reused
// or retried; a failed attempt stays failed.
type Attempt struct {
	State          State
	Email          string
	PriceID        string
	CustomerID     string
	SubscriptionID string
	Confirmation   Confirmation

	FailedStep Step
	Err        error
	// Message is the normalized, user-facing reason for the failure.
	Message string
}

// Orchestrator drives create customer, then create subscription, then
// builds the confirmation. There is no compensation for partial failures.
type Orchestrator struct {
	billing   billing.Service
	returnURL string
}

// NewOrchestrator takes the public app origin used to build return URLs.
func NewOrchestrator(svc billing.Service, appURL string) *Orchestrator {
	return &Orchestrator{
		billing:   svc,
		returnURL: strings.TrimRight(appURL, "/") + "/checkout/success",
	}
}

// Start runs the sequence for one email and price. The returned attempt is
// either SubscriptionPending or Failed; Confirmed is only reached once the
// browser confirms payment (see Confirm).
func (o *Orchestrator) Start(ctx context.Context, email, priceID string) *Attempt {
	a := &Attempt{State: StateIdle, Email: email, PriceID: priceID}

	customerID, err := o.billing.CreateCustomer(ctx, email)
	if err != nil {
		return a.fail(StepCreateCustomer, err)
	}
	a.CustomerID = customerID
	a.State = StateCustomerCreated

	res, err := o.billing.CreateSubscription(ctx, customerID, priceID)
	if err != nil {
		return a.fail(StepCreateSubscription, err)
	}
	a.SubscriptionID = res.SubscriptionID
	a.Confirmation = Confirmation{
		ClientSecret: res.ClientSecret,
		ReturnURL:    o.ReturnURL(res.SubscriptionID),
	}
	a.State = StateSubscriptionPending

	slog.Info("checkout pending confirmation", "customer_id", a.CustomerID, "subscription_id", a.SubscriptionID)
	return a
}

// Confirm applies the provider's redirect status to a pending attempt.
// Anything other than "failed" counts as confirmed.
func (o *Orchestrator) Confirm(a *Attempt, redirectStatus string) *Attempt {
	if a.State != StateSubscriptionPending {
		return a
	}
	if !PaymentSucceeded(redirectStatus) {
		return a.fail(StepConfirm, errPaymentFailed)
	}
	a.State = StateConfirmed
	a.Confirmation.ClientSecret = ""
	return a
}

// Resume rebuilds a pending attempt from the subscription id carried on the
// return URL, so the redirect status can be applied to it.
func (o *Orchestrator) Resume(subscriptionID string) *Attempt {
	return &Attempt{State: StateSubscriptionPending, SubscriptionID: subscriptionID}
}

// ReturnURL is where the provider sends the browser after confirmation.
func (o *Orchestrator) ReturnURL(subscriptionID string) string {
	q := url.Values{}
	q.Set("subscription_id", subscriptionID)
	return o.returnURL + "?" + q.Encode()
}

func (a *Attempt) fail(step Step, err error) *Attempt {
	a.State = StateFailed
	a.FailedStep = step
	a.Err = err
	a.Message = billing.MessageOf(err)
	a.Confirmation = Confirmation{}
	slog.Warn("checkout attempt failed", "step", string(step), "customer_id", a.CustomerID, "err", err)
	return a
}
