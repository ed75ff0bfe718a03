package config

import (
	"fmt"
	"log"
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

	// Session signing secret for issued JWTs. Required.
	JWTSecret string

	// Email granted access to admin-only endpoints (dashboard stats).
	AdminEmail string

	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string

	// Web-search provider credentials.
	SearchAPIKey  string
	SearchBaseURL string

	// Mapbox token is rendered into the map widget config. Required.
	MapboxToken string

	AnalyticsID string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		ServerPort:     getenvOrDefault("PORT", "8080"),
		DBHost:         getenvOrDefault("DB_HOST", "localhost"),
		DBPort:         getenvOrDefault("DB_PORT", "5432"),
		DBUser:         getenvOrDefault("DB_USER", "postgres"),
		DBPassword:     getenvOrDefault("DB_PASSWORD", "postgres"),
		DBName:         getenvOrDefault("DB_NAME", "marketplace"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:   os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect: os.Getenv("GOOGLE_REDIRECT_URI"),
		SearchAPIKey:   os.Getenv("SEARCH_API_KEY"),
		SearchBaseURL:  getenvOrDefault("SEARCH_BASE_URL", "https://api.search.brave.com/res/v1"),
		MapboxToken:    os.Getenv("MAPBOX_TOKEN"),
		AnalyticsID:    os.Getenv("ANALYTICS_ID"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.MapboxToken == "" {
		log.Fatal("MAPBOX_TOKEN is required")
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
