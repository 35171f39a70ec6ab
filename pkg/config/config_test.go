package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "")
	t.Setenv("SHEET1_NAME", "")
	t.Setenv("SHEET2_NAME", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sheet1Name != "Sheet1" || cfg.Sheet2Name != "Sheet2" {
		t.Errorf("Expected default sheet names, got %q / %q", cfg.Sheet1Name, cfg.Sheet2Name)
	}
	if cfg.CredentialsFile != "credentials.json" {
		t.Errorf("Expected default credentials file, got %q", cfg.CredentialsFile)
	}
	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}
	if cfg.SpreadsheetConfigured() {
		t.Error("Expected SpreadsheetConfigured to be false with no ID")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", " abc123 ")
	t.Setenv("SHEET1_NAME", "Masters")
	t.Setenv("SHEET2_NAME", "Tracker")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SpreadsheetID != "abc123" {
		t.Errorf("Expected trimmed spreadsheet ID, got %q", cfg.SpreadsheetID)
	}
	if cfg.Sheet1Name != "Masters" || cfg.Sheet2Name != "Tracker" {
		t.Errorf("Expected overridden sheet names, got %q / %q", cfg.Sheet1Name, cfg.Sheet2Name)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if !cfg.SpreadsheetConfigured() {
		t.Error("Expected SpreadsheetConfigured to be true")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Error("Expected error for non-numeric PORT")
	}
}

func TestSpreadsheetConfiguredPlaceholder(t *testing.T) {
	cfg := &Config{SpreadsheetID: placeholderSpreadsheetID}
	if cfg.SpreadsheetConfigured() {
		t.Error("Expected placeholder spreadsheet ID to count as unconfigured")
	}
}
