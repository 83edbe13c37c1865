package stripegw

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v75"
)

// Kind classifies a provider failure. The set is closed; callers switch on it.
type Kind int

const (
	// KindAPI covers provider outages, network failures and anything unclassified.
	KindAPI Kind = iota
	KindNotFound
	KindInvalidRequest
	KindCard
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidRequest:
		return "invalid_request"
	case KindCard:
		return "card"
	default:
		return "api"
	}
}

// Error is the only error type returned by the gateway.
type Error struct {
	Kind Kind
	Op   string
	// Message is the provider's human-readable explanation, safe to show.
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("stripe %s (%s): %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// wrap tags an SDK error. A nil err stays nil.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *stripe.Error
	if !errors.As(err, &se) {
		return &Error{Kind: KindAPI, Op: op, Message: err.Error(), Err: err}
	}

	msg := se.Msg
	if msg == "" {
		msg = err.Error()
	}
	out := &Error{Kind: KindAPI, Op: op, Message: msg, Err: err}
	switch {
	case se.HTTPStatusCode == http.StatusNotFound || se.Code == stripe.ErrorCodeResourceMissing:
		out.Kind = KindNotFound
	case se.Type == stripe.ErrorTypeCard:
		out.Kind = KindCard
	case se.Type == stripe.ErrorTypeInvalidRequest:
		out.Kind = KindInvalidRequest
	}
	return out
}

// notFound is used when the SDK succeeds but returns nothing useful.
func notFound(op, msg string) error {
	return &Error{Kind: KindNotFound, Op: op, Message: msg}
}
