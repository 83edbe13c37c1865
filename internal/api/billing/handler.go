package billing

import (
	"paywall-app/internal/domain/billing"
	"paywall-app/internal/domain/checkout"
)

// Handler serves the checkout JSON endpoints. The service wraps the single
// Stripe handle created at startup.
type Handler struct {
	billing      billing.Service
	orchestrator *checkout.Orchestrator
}

func NewHandler(svc billing.Service, orch *checkout.Orchestrator) *Handler {
	return &Handler{billing: svc, orchestrator: orch}
}
