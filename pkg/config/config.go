package config

import "os"

// Config holds all process configuration. It is loaded once in main and
// passed explicitly to constructors so services never read the environment
// themselves.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string

	JWTSecret string

	// SneakerDBAPIKey authenticates SKU catalog lookups. Optional.
	SneakerDBAPIKey string
	// PricingAPIKey authenticates live market pricing. Optional: when empty
	// the pricing client serves deterministic demo quotes.
	PricingAPIKey  string
	CatalogBaseURL string
	PricingBaseURL string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "soletrack"),
		DBPort:          getEnv("DB_PORT", "5432"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me-in-production"),
		SneakerDBAPIKey: getEnv("SNEAKER_DB_API_KEY", ""),
		PricingAPIKey:   getEnv("PRICING_API_KEY", ""),
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://the-sneaker-database.p.rapidapi.com"),
		PricingBaseURL:  getEnv("PRICING_BASE_URL", "https://stockx-pricing-data-and-market-analytics.p.rapidapi.com"),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
