package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	FrontendURL string
	JWTSecret   string
	JWTExpire   time.Duration

	// ResetTokenInResponse echoes the raw password-reset secret back in the
	// forgot-password response. Test environments only; a deployment that
	// leaves this on hands the reset link to anyone who can read the response.
	ResetTokenInResponse bool
}

// App is the process-wide configuration. Loaded once at startup, read-only
// afterwards.
var App Config

func Load() {
	_ = godotenv.Load(".env.local")

	App = Config{
		Port:                 envOr("PORT", "5000"),
		Env:                  envOr("ENV", "development"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		FrontendURL:          envOr("FRONTEND_URL", "http://localhost:5173"),
		JWTSecret:            envOr("JWT_SECRET", "your-secret-key-change-this"),
		JWTExpire:            envDuration("JWT_EXPIRE", 168*time.Hour),
		ResetTokenInResponse: os.Getenv("RESET_TOKEN_IN_RESPONSE") == "true",
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("Warning: JWT_SECRET not set, using insecure default")
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using default %s", key, value, fallback)
		return fallback
	}
	return d
}
