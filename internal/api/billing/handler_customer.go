package billing

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"paywall-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCustomer(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	customerID, err := h.billing.CreateCustomer(c.Request.Context(), body.Email)
	if err != nil {
		if errors.Is(err, billing.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		}
		slog.Error("error creating customer", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customerId": customerID})
}
