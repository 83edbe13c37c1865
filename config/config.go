package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the checkout service reads from the environment.
type Config struct {
	Port       string
	CORSOrigin string
	// AppURL is the public origin used to build the post-payment return URL.
	AppURL string

	StripeSecretKey      string
	StripePublishableKey string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	secret, err := mustEnv("STRIPE_SECRET_KEY")
	if err != nil {
		return nil, err
	}
	publishable, err := mustEnv("STRIPE_PUBLISHABLE_KEY")
	if err != nil {
		return nil, err
	}

	port := getEnv("PORT", "8080")
	appURL := strings.TrimRight(getEnv("APP_URL", "http://localhost:"+port), "/")
	// the browser talks to the same origin unless told otherwise
	return &Config{
		Port:                 port,
		CORSOrigin:           getEnv("CORS_ORIGIN", appURL),
		AppURL:               appURL,
		StripeSecretKey:      secret,
		StripePublishableKey: publishable,
	}, nil
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("missing required environment variable: %s", key)
	}
	return strings.TrimSpace(v), nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
