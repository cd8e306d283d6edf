package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	Port string

	DBType        string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSSLMode     string
	DBMaxIdleConn int
	DBMaxOpenConn int

	// InvoiceDir is where rendered PDFs are written and served from.
	InvoiceDir string

	Business BusinessConfig
}

// BusinessConfig is the static identity printed on every invoice.
type BusinessConfig struct {
	Name           string
	Tagline        string
	Address        string
	Phone          string
	Email          string
	CurrencySymbol string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:       getenv("APP_SERVICE", "billd"),
		AppVersion:    getenv("APP_VERSION", "0.1.0"),
		Environment:   getenv("ENVIRONMENT", "development"),
		Port:          getenv("PORT", "4000"),
		DBType:        getenv("DATABASE_TYPE", "sqlite"),
		DBHost:        getenv("DATABASE_HOST", "localhost"),
		DBPort:        getenv("DATABASE_PORT", "5432"),
		DBName:        getenv("DATABASE_NAME", "billing.db"),
		DBUser:        getenv("DATABASE_USER", "postgres"),
		DBPassword:    getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:     getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn: getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn: getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		InvoiceDir:    getenv("INVOICE_DIR", "./invoices"),
		Business: BusinessConfig{
			Name:           getenv("BUSINESS_NAME", "JMD Ayurveda"),
			Tagline:        getenv("BUSINESS_TAGLINE", "Ayurvedic Remedies & Wellness"),
			Address:        getenv("BUSINESS_ADDRESS", "Address: Your Shop Address, Kota, Rajasthan"),
			Phone:          getenv("BUSINESS_PHONE", "+91-XXXXXXXXXX"),
			Email:          getenv("BUSINESS_EMAIL", "contact@jmdayurveda.in"),
			CurrencySymbol: getenv("BUSINESS_CURRENCY_SYMBOL", "Rs."),
		},
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
