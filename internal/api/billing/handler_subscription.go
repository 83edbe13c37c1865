package billing

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"paywall-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateSubscription(c *gin.Context) {
	var body struct {
		CustomerID string `json:"customerId"`
		PriceID    string `json:"priceId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(body.CustomerID) == "" || strings.TrimSpace(body.PriceID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer ID and Price ID are required"})
		return
	}

	res, err := h.billing.CreateSubscription(c.Request.Context(), body.CustomerID, body.PriceID)
	if err != nil {
		if errors.Is(err, billing.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer ID and Price ID are required"})
			return
		}
		message := billing.MessageOf(err)
		slog.Error("error creating subscription", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create subscription",
			"message": message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscriptionId": res.SubscriptionID,
		"clientSecret":   res.ClientSecret,
		"status":         res.Status,
	})
}
