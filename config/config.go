package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Base URL of the mailer service, e.g. http://localhost:8083
	MailerURL string

	// Mailer-only settings
	MailerPort    string
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
}

func Load() *Config {
	// .env is optional; real deployments use plain env vars
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8082"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "hotel_booking"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		MailerURL: getEnv("MAILER_URL", "http://localhost:8083"),

		MailerPort:    getEnv("MAILER_PORT", "8083"),
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		EmailFrom:     getEnv("EMAIL_FROM", "onboarding@resend.dev"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "מלון DELUX"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
