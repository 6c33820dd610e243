package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultEndpoint = "https://steamcharts.com"

// Config holds all chartpull configuration.
type Config struct {
	Endpoint    string        // base URL of the chart data service
	OutputDir   string        // directory the CSV file is written to
	HTTPTimeout time.Duration // timeout for the single fetch request
	LogLevel    string        // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first if
// present; a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Endpoint:    getenv("CHARTPULL_ENDPOINT", defaultEndpoint),
		OutputDir:   getenv("CHARTPULL_OUTPUT_DIR", "."),
		HTTPTimeout: getenvSeconds("CHARTPULL_HTTP_TIMEOUT", 30*time.Second),
		LogLevel:    getenv("CHARTPULL_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
