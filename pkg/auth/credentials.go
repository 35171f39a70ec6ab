// Package auth turns a Google service-account credential blob into an
// authenticated HTTP client for the Sheets API.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// scopes needed to read and write the tracker spreadsheet.
var scopes = []string{sheetsapi.SpreadsheetsScope}

// NewClient returns an *http.Client authenticated as the service account.
// Inline JSON takes priority over the credentials file path, so hosted
// deployments can supply the blob through the environment instead of
// mounting a file.
func NewClient(ctx context.Context, inlineJSON, credentialsFile string) (*http.Client, error) {
	data := []byte(inlineJSON)
	if inlineJSON == "" {
		b, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read credentials file %s: %w", credentialsFile, err)
		}
		data = b
	}

	conf, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account credentials: %w", err)
	}

	// conf.Client handles token fetching and refresh transparently.
	return conf.Client(ctx), nil
}
