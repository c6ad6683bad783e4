// Package config loads application configuration from environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	APIBaseURL string
	Timeout    time.Duration
	DBPath     string
	Offline    bool
	// SecretKey is an optional 32-byte AES-256 key for encrypting the
	// stored session token at rest. nil disables encryption.
	SecretKey []byte
}

// Load reads configuration from a .env file (if present) and environment
// variables, returning a validated Config. Environment variables take
// precedence over .env entries. Optional variables with defaults:
// LACOS_API_URL (hosted platform API), LACOS_TIMEOUT (30s),
// LACOS_DB_PATH (lacos.db), LACOS_OFFLINE (false).
// LACOS_SECRET_KEY, when set, must be 64 hex characters (32 bytes).
func Load() (*Config, error) {
	// A missing .env is fine; env vars or defaults cover everything.
	_ = godotenv.Load()

	apiBaseURL := "https://lacos-digitais-api.onrender.com/api"
	if v, ok := os.LookupEnv("LACOS_API_URL"); ok && v != "" {
		apiBaseURL = v
	}

	// The hosted free tier can take a while to wake, so the default
	// request timeout is generous.
	timeout := 30 * time.Second
	if v, ok := os.LookupEnv("LACOS_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("LACOS_TIMEOUT has invalid duration %q: %w", v, err)
		}
		timeout = parsed
	}

	dbPath := "lacos.db"
	if v, ok := os.LookupEnv("LACOS_DB_PATH"); ok {
		dbPath = v
	}

	offline := false
	if v, ok := os.LookupEnv("LACOS_OFFLINE"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LACOS_OFFLINE has invalid bool %q: %w", v, err)
		}
		offline = parsed
	}

	var secretKey []byte
	if v, ok := os.LookupEnv("LACOS_SECRET_KEY"); ok && v != "" {
		decoded, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("LACOS_SECRET_KEY is not valid hex: %w", err)
		}
		if len(decoded) != 32 {
			return nil, fmt.Errorf("LACOS_SECRET_KEY must decode to 32 bytes, got %d", len(decoded))
		}
		secretKey = decoded
	}

	return &Config{
		APIBaseURL: apiBaseURL,
		Timeout:    timeout,
		DBPath:     dbPath,
		Offline:    offline,
		SecretKey:  secretKey,
	}, nil
}
