package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// MercadoPago
	MPAccessToken string
	MPBaseURL     string

	// Firebase: either an inline service-account JSON or a path to one.
	FirebaseServiceAccount  string
	FirebaseCredentialsFile string
	FirebaseProjectID       string

	// Optional override for the origin used in notification/back URLs.
	// When empty, URLs are derived from the incoming request host.
	PublicBaseURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		MPAccessToken: getEnv("MP_ACCESS_TOKEN", ""),
		MPBaseURL:     getEnv("MP_BASE_URL", "https://api.mercadopago.com"),

		FirebaseServiceAccount:  getEnv("FIREBASE_SERVICE_ACCOUNT", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
	}

	if cfg.MPAccessToken == "" {
		return nil, errors.New("MP_ACCESS_TOKEN is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
