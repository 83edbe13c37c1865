package billing

import (
	"errors"
	"net/http"

	"paywall-app/internal/domain/billing"
	"paywall-app/internal/domain/checkout"
	"paywall-app/internal/infra/stripegw"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Checkout runs customer and subscription creation in one request and
// returns what the browser needs to confirm the payment.
func (h *Handler) Checkout(c *gin.Context) {
	var body struct {
		Email   string `json:"email" binding:"required,email"`
		PriceID string `json:"priceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindFailureText(err)})
		return
	}

	a := h.orchestrator.Start(c.Request.Context(), body.Email, body.PriceID)
	if a.State == checkout.StateFailed {
		c.JSON(failureStatus(a.Err), gin.H{
			"error":   failureText(a.FailedStep),
			"message": a.Message,
			"state":   a.State,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customerId":     a.CustomerID,
		"subscriptionId": a.SubscriptionID,
		"clientSecret":   a.Confirmation.ClientSecret,
		"returnUrl":      a.Confirmation.ReturnURL,
		"state":          a.State,
	})
}

func failureText(step checkout.Step) string {
	switch step {
	case checkout.StepCreateCustomer:
		return "Failed to create customer"
	case checkout.StepCreateSubscription:
		return "Failed to create subscription"
	default:
		return "Checkout failed"
	}
}

// bindFailureText tells a malformed address apart from missing fields.
func bindFailureText(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return "Invalid email address"
			}
		}
	}
	return "Email and Price ID are required"
}

func failureStatus(err error) int {
	if errors.Is(err, billing.ErrValidation) {
		return http.StatusBadRequest
	}
	var gwErr *stripegw.Error
	if !errors.As(err, &gwErr) {
		return http.StatusInternalServerError
	}
	switch gwErr.Kind {
	case stripegw.KindCard:
		return http.StatusPaymentRequired
	case stripegw.KindInvalidRequest:
		return http.StatusBadRequest
	case stripegw.KindNotFound:
		return http.StatusNotFound
	case stripegw.KindAPI:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
