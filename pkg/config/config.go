// Package config loads process configuration from the environment once at
// startup. Nothing reads ambient state after Load returns; handlers receive
// the resulting Config explicitly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// placeholderSpreadsheetID ships in .env templates and means "not configured".
const placeholderSpreadsheetID = "paste_your_spreadsheet_id_here"

type Config struct {
	SpreadsheetID string

	// CredentialsJSON is an inline service-account blob; it takes priority
	// over CredentialsFile so cloud deployments can avoid mounting a file.
	CredentialsJSON string
	CredentialsFile string

	// Sheet1Name holds the reference lists, Sheet2Name the task rows.
	Sheet1Name string
	Sheet2Name string

	Port int
}

// Load reads configuration from the environment, honoring a .env file in the
// working directory when present.
func Load() (*Config, error) {
	// A missing .env is fine; deployments may set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		SpreadsheetID:   strings.TrimSpace(os.Getenv("SPREADSHEET_ID")),
		CredentialsJSON: strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")),
		CredentialsFile: envOr("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		Sheet1Name:      envOr("SHEET1_NAME", "Sheet1"),
		Sheet2Name:      envOr("SHEET2_NAME", "Sheet2"),
		Port:            5000,
	}

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", p, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// SpreadsheetConfigured reports whether a real spreadsheet ID is set, as
// opposed to empty or the template placeholder.
func (c *Config) SpreadsheetConfigured() bool {
	return c.SpreadsheetID != "" && c.SpreadsheetID != placeholderSpreadsheetID
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
