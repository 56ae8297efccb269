package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment. A .env file is
// honored when present so local runs don't need exported variables.
type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	StripeSecretKey string

	AdminUsername string
	AdminPassword string

	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailFrom     string

	FrontendDir string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),

		// Insecure defaults kept for parity with existing deployments;
		// override both in any environment that matters.
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),

		MailHost:     os.Getenv("MAIL_HOST"),
		MailPort:     getEnvInt("MAIL_PORT", 587),
		MailUser:     os.Getenv("MAIL_USER"),
		MailPassword: os.Getenv("MAIL_PASS"),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@moverank.io"),

		FrontendDir: getEnv("FRONTEND_DIR", "frontend"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return cfg, nil
}

// MailConfigured reports whether the SMTP sender can be wired at all.
func (c *Config) MailConfigured() bool {
	return c.MailHost != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
