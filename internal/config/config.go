package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	SessionSecret       string
	SessionTTL          time.Duration
	OIDCIssuerURL       string
	OIDCClientID        string
	OIDCClientSecret    string
	OIDCScopes          []string
	CallbackURLOverride string
	AllowOrigins        []string
	LogstashTCPAddr     string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	ttl := 7 * 24 * time.Hour
	if v, err := time.ParseDuration(getenv("SESSION_TTL", "168h")); err == nil && v > 0 {
		ttl = v
	}

	return Config{
		Port:                getenv("PORT", "8080"),
		DatabaseURL:         getenv("DATABASE_URL", ""),
		SessionSecret:       getenv("SESSION_SECRET", "taste-trek-dev-secret"),
		SessionTTL:          ttl,
		OIDCIssuerURL:       getenv("OIDC_ISSUER_URL", ""),
		OIDCClientID:        getenv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret:    getenv("OIDC_CLIENT_SECRET", ""),
		OIDCScopes:          splitAndTrim(getenv("OIDC_SCOPES", "openid,email,profile,offline_access")),
		CallbackURLOverride: getenv("OIDC_CALLBACK_URL", ""),
		AllowOrigins:        splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:     getenv("LOGSTASH_TCP_ADDR", ""),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
