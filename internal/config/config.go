package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate applies when TAX_RATE is unset.
var DefaultTaxRate = decimal.RequireFromString("0.08")

type Config struct {
	Port           string
	DBDSN          string
	LogFile        string
	TaxRate        decimal.Decimal
	QueryCacheSize int
}

// Load reads an optional .env file (ENV_FILE overrides the path) and then the
// process environment; real env vars win over .env entries.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] could not read %s: %v", envFile, err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "noiratelier.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./noiratelier.log"
	}

	cfg := Config{
		Port:           port,
		DBDSN:          dsn,
		LogFile:        logFile,
		TaxRate:        decimalEnv("TAX_RATE", DefaultTaxRate),
		QueryCacheSize: intEnv("QUERY_CACHE_SIZE", 64),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TAX_RATE=%s QUERY_CACHE_SIZE=%d",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.TaxRate, cfg.QueryCacheSize)
	return cfg
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[config] ignoring %s=%q: want a non-negative integer", key, v)
		return def
	}
	return n
}

func decimalEnv(key string, def decimal.Decimal) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		log.Printf("[config] ignoring %s=%q: want a non-negative decimal", key, v)
		return def
	}
	return d
}
