package billing

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"paywall-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntent creates the intent the payment form is mounted with
// before the buyer submits.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		PriceID string `json:"priceId"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(body.PriceID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price ID is required"})
		return
	}

	secret, err := h.billing.CreatePaymentIntent(c.Request.Context(), billing.PaymentIntentInput{
		PriceID: body.PriceID,
		Email:   body.Email,
	})
	if err != nil {
		if errors.Is(err, billing.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price ID is required"})
			return
		}
		slog.Error("error creating payment intent", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
