package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	BaseURL    string
	UserAgent  string

	// FetchTimeout of zero leaves the inbound request as the only deadline.
	FetchTimeout            time.Duration
	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration

	LayoutName string
	LayoutFile string

	TrustProxyHeaders bool
	OTLPEndpoint      string
	LogLevel          string
	LogFormat         string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	baseURL := getEnv("BASE_URL", "https://haxnode.net/")
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		BaseURL:                 baseURL,
		UserAgent:               getEnv("USER_AGENT", "ListingScraper/1.0"),
		FetchTimeout:            getDurationEnv("FETCH_TIMEOUT", 0),
		BreakerFailureThreshold: uint32(max(getIntEnv("BREAKER_FAILURE_THRESHOLD", 0), 0)),
		BreakerOpenTimeout:      getDurationEnv("BREAKER_OPEN_TIMEOUT", 30*time.Second),
		LayoutName:              getEnv("LAYOUT_NAME", "post-inner"),
		LayoutFile:              getEnv("LAYOUT_FILE", ""),
		TrustProxyHeaders:       getBoolEnv("TRUST_PROXY_HEADERS", false),
		OTLPEndpoint:            getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "1m", "60s")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
