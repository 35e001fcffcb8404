package app

import "os"

type Config struct {
	Env     string
	Port    string
	Storage string // "postgres" or "memory"
	DSN     string

	StripeSecretKey string
	Currency        string

	JWTSecret string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	ContactInbox string
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnv("APP_PORT", "8080"),
		Storage:         getEnv("STORAGE", "postgres"),
		DSN:             os.Getenv("DB_DSN"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:        getEnv("CURRENCY", "usd"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getEnv("SMTP_PORT", "1025"),
		SMTPFrom:        getEnv("SMTP_FROM", "noreply@pet-cheap.local"),
		ContactInbox:    os.Getenv("CONTACT_INBOX"),
	}
}
