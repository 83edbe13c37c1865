package checkout

import "errors"

// RedirectStatusFailed is the redirect_status value Stripe appends to the
// return URL when confirmation did not succeed.
const RedirectStatusFailed = "failed"

// PaymentFailedMessage is shown when the provider reports a failed payment.
const PaymentFailedMessage = "Zahlung fehlgeschlagen."

var errPaymentFailed = errors.New(PaymentFailedMessage)

// PaymentSucceeded reports whether a success-page visit should show success
// content. Only an explicit "failed" status is treated as failure.
func PaymentSucceeded(redirectStatus string) bool {
	return redirectStatus != RedirectStatusFailed
}
