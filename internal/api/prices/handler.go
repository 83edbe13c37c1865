package prices

import (
	"errors"
	"log/slog"
	"net/http"

	"paywall-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	billing billing.Service
}

func NewHandler(svc billing.Service) *Handler {
	return &Handler{billing: svc}
}

// GetPrices lists the active prices of the single active product.
func (h *Handler) GetPrices(c *gin.Context) {
	list, err := h.billing.ListPrices(c.Request.Context())
	if err != nil {
		if errors.Is(err, billing.ErrNoActiveProduct) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active products found"})
			return
		}
		slog.Error("error fetching prices", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": list})
}
