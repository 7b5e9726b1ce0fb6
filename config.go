package main

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the service.
type Config struct {
	Host    string
	Port    string
	Env     string // "production" switches the logger to JSON output
	Title   string
	Version string

	APIKeys     []string // empty list disables authentication
	CORSOrigins []string

	MSSQLHost      string
	MSSQLPort      string
	MSSQLDatabase  string
	MSSQLUser      string
	MSSQLPassword  string
	MSSQLTrustCert bool
}

// LoadConfig loads environment variables into a Config and validates them.
// A .env file is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:           envOr("API_HOST", "0.0.0.0"),
		Port:           envOr("API_PORT", "8000"),
		Env:            os.Getenv("API_ENV"),
		Title:          envOr("API_TITLE", "GSG API"),
		Version:        envOr("API_VERSION", "1.0.0"),
		APIKeys:        splitCSV(os.Getenv("API_KEYS")),
		CORSOrigins:    splitCSV(envOr("CORS_ORIGINS", "*")),
		MSSQLHost:      envOr("MSSQL_HOST", "localhost"),
		MSSQLPort:      envOr("MSSQL_PORT", "1433"),
		MSSQLDatabase:  envOr("MSSQL_DATABASE", "lius"),
		MSSQLUser:      os.Getenv("MSSQL_USER"),
		MSSQLPassword:  os.Getenv("MSSQL_PASSWORD"),
		MSSQLTrustCert: envOr("MSSQL_TRUST_CERT", "true") == "true",
	}

	if cfg.MSSQLUser == "" {
		return nil, fmt.Errorf("MSSQL_USER is required")
	}
	if cfg.MSSQLPassword == "" {
		return nil, fmt.Errorf("MSSQL_PASSWORD is required")
	}

	return cfg, nil
}

// DSN builds the sqlserver:// connection URL.
func (c *Config) DSN() string {
	q := url.Values{}
	q.Set("database", c.MSSQLDatabase)
	if c.MSSQLTrustCert {
		q.Set("TrustServerCertificate", "true")
	}

	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.MSSQLUser, c.MSSQLPassword),
		Host:     net.JoinHostPort(c.MSSQLHost, c.MSSQLPort),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
