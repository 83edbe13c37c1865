package routes

import (
	billingapi "paywall-app/internal/api/billing"
	"paywall-app/internal/api/pages"
	"paywall-app/internal/api/prices"
	"paywall-app/internal/app/http/middleware"
	"paywall-app/internal/domain/billing"
	"paywall-app/internal/domain/checkout"

	"github.com/gin-gonic/gin"
)

// Deps is everything the route table needs. All handlers share the same
// billing service and therefore the same Stripe handle.
type Deps struct {
	Billing        billing.Service
	Orchestrator   *checkout.Orchestrator
	PublishableKey string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestID(), middleware.AccessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	pagesH := pages.NewHandler(d.Billing, d.Orchestrator, d.PublishableKey)
	r.GET("/", pagesH.Paywall)
	r.GET("/checkout/success", pagesH.Success)
	r.GET("/checkout/canceled", pagesH.Canceled)

	pricesH := prices.NewHandler(d.Billing)
	billingH := billingapi.NewHandler(d.Billing, d.Orchestrator)

	api := r.Group("/api")
	api.Use(middleware.SanitizeJSONInput())
	api.GET("/get-prices", pricesH.GetPrices)
	api.POST("/create-customer", billingH.CreateCustomer)
	api.POST("/create-payment-intent", billingH.CreatePaymentIntent)
	api.POST("/create-subscription", billingH.CreateSubscription)
	api.POST("/checkout", billingH.Checkout)
}
