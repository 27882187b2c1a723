package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	PORT        string
	DB_URL      string
	APP_URL     string
	CORS_ORIGIN string

	CLERK_ISSUER string

	STRIPE_PRICE_CREATOR string
	STRIPE_PRICE_PRO     string
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	APP_URL = getEnv("APP_URL", "http://localhost:3000")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	CLERK_ISSUER = mustEnv("CLERK_ISSUER")

	// Webhook secrets (CLERK_WEBHOOK_SECRET, STRIPE_WEBHOOK_SECRET) and the
	// Stripe API key are read at request time so a missing secret surfaces as
	// a 500 on the endpoint instead of blocking startup.
	STRIPE_PRICE_CREATOR = getEnv("STRIPE_PRICE_CREATOR", "")
	STRIPE_PRICE_PRO = getEnv("STRIPE_PRICE_PRO", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatal().Str("key", key).Msg("Missing required environment variable")
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
