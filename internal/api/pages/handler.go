package pages

import (
	"log/slog"
	"net/http"

	"paywall-app/internal/domain/billing"
	"paywall-app/internal/domain/checkout"
	"paywall-app/internal/domain/prices"

	"github.com/gin-gonic/gin"
)

// Handler serves the paywall and the two terminal checkout pages.
type Handler struct {
	billing        billing.Service
	orchestrator   *checkout.Orchestrator
	publishableKey string
}

func NewHandler(svc billing.Service, orch *checkout.Orchestrator, publishableKey string) *Handler {
	return &Handler{billing: svc, orchestrator: orch, publishableKey: publishableKey}
}

func (h *Handler) Paywall(c *gin.Context) {
	list, err := h.billing.ListPrices(c.Request.Context())
	if err != nil {
		// The page still renders; it just has nothing to sell.
		slog.Error("error fetching prices", "err", err)
		list = []prices.Price{}
	}

	c.HTML(http.StatusOK, "paywall.html", gin.H{
		"Prices":         list,
		"PublishableKey": h.publishableKey,
	})
}

// Success is the provider's return target. A failed redirect status goes to
// the cancel page without rendering any success content.
func (h *Handler) Success(c *gin.Context) {
	a := h.orchestrator.Resume(c.Query("subscription_id"))
	a = h.orchestrator.Confirm(a, c.Query("redirect_status"))
	if a.State == checkout.StateFailed {
		c.Redirect(http.StatusFound, "/checkout/canceled")
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"SubscriptionID": a.SubscriptionID,
	})
}

func (h *Handler) Canceled(c *gin.Context) {
	c.HTML(http.StatusOK, "canceled.html", nil)
}
