package main

import (
	"log/slog"
	"os"
	"time"

	"paywall-app/config"
	routes "paywall-app/internal/app/http"
	"paywall-app/internal/api/pages"
	"paywall-app/internal/domain/billing"
	"paywall-app/internal/domain/checkout"
	"paywall-app/internal/infra/stripegw"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	// one Stripe handle for the whole process
	gw := stripegw.New(cfg.StripeSecretKey)
	svc := billing.NewService(gw)
	orch := checkout.NewOrchestrator(svc, cfg.AppURL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.SetHTMLTemplate(pages.Templates())

	routes.RegisterRoutes(r, routes.Deps{
		Billing:        svc,
		Orchestrator:   orch,
		PublishableKey: cfg.StripePublishableKey,
	})

	slog.Info("listening", "port", cfg.Port, "app_url", cfg.AppURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
