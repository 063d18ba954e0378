package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL   string
	Addr          string
	AllowedOrigin string
	LogLevel      string
	LogFormat     string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = dsnFromParts()
	}
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL or DB_HOST/DB_USER/DB_NAME env vars are required")
	}

	addr := fmt.Sprintf(":%s", envOrDefault("PORT", "8080"))

	return Config{
		DatabaseURL:   dsn,
		Addr:          addr,
		AllowedOrigin: envOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
	}, nil
}

func dsnFromParts() string {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	name := os.Getenv("DB_NAME")
	if host == "" || user == "" || name == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		envOrDefault("DB_PORT", "5432"),
		user,
		os.Getenv("DB_PASSWORD"),
		name,
		envOrDefault("DB_SSLMODE", "disable"),
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
