package billing

import (
	"errors"
	"fmt"
)

// Typed errors for the billing layer. They let the HTTP layer pick a status
// code without knowing anything about the Stripe SDK.
var (
	// ErrValidation indicates missing or malformed caller input.
	ErrValidation = errors.New("validation error")

	// ErrNoActiveProduct indicates the catalog has no active product to sell.
	ErrNoActiveProduct = errors.New("no active products found")

	// ErrGateway indicates a failure from the payment provider.
	ErrGateway = errors.New("gateway error")

	// Per-operation provider failures. Each matches ErrGateway too.
	ErrCreateCustomer      = fmt.Errorf("failed to create customer: %w", ErrGateway)
	ErrCreatePaymentIntent = fmt.Errorf("failed to create payment intent: %w", ErrGateway)
	ErrCreateSubscription  = fmt.Errorf("failed to create subscription: %w", ErrGateway)
)

// OpError ties a failed operation to its category and its cause.
// errors.Is matches both Kind and anything in Err's chain.
type OpError struct {
	Op   string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func opErr(op string, kind, err error) error {
	return &OpError{Op: op, Kind: kind, Err: err}
}
