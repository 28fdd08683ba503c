package connection

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the service.
type Config struct {
	Port            string
	CredentialsFile string
	ProjectID       string
	AuthMode        string
	RefreshCooldown time.Duration
	SweepInterval   time.Duration
	Location        *time.Location
}

// LoadConfig reads configuration from the environment, loading .env first
// if one is present.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	cfg := Config{
		Port:            strings.TrimSpace(os.Getenv("PORT")),
		CredentialsFile: strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_1")),
		ProjectID:       strings.TrimSpace(os.Getenv("FIRESTORE_PROJECT_ID")),
		AuthMode:        strings.TrimSpace(os.Getenv("AUTH_MODE")),
		RefreshCooldown: parseDurationEnv("REFRESH_COOLDOWN", 3*time.Second),
		SweepInterval:   parseDurationEnv("SWEEP_INTERVAL", 0),
		Location:        time.Local,
	}

	if tz := strings.TrimSpace(os.Getenv("TZ_LOCATION")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("TZ_LOCATION: %w", err)
		}
		cfg.Location = loc
	}

	if cfg.AuthMode != "jwt" && cfg.CredentialsFile == "" {
		return cfg, fmt.Errorf("environment variable GOOGLE_APPLICATION_CREDENTIALS_1 is not set")
	}

	return cfg, nil
}

// parseDurationEnv reads env as a duration ("3s", "5m"); empty or invalid
// values fall back to def.
func parseDurationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return def
	}
	return d
}
