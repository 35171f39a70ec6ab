// Package sheets wraps the Google Sheets API for one spreadsheet, exposing
// the whole-row reads and writes the tracker needs.
package sheets

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client is a Sheets API client bound to a single spreadsheet.
type Client struct {
	srv           *sheetsapi.Service
	spreadsheetID string
}

// NewClient creates a Sheets client from an already-authenticated HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client, spreadsheetID string) (*Client, error) {
	srv, err := sheetsapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// GetRange returns the cell values in an A1-style range as strings. Trailing
// empty cells are omitted by the API, so rows may be shorter than the range.
func (c *Client) GetRange(ctx context.Context, a1 string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, a1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read range %s: %w", a1, err)
	}
	return toStrings(resp.Values), nil
}

// AppendRow appends one row after the last data row of the range.
func (c *Client) AppendRow(ctx context.Context, a1 string, row []string) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(row)}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, a1, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to append row to %s: %w", a1, err)
	}
	return nil
}

// UpdateRow overwrites an A1-style range with a single row of values.
func (c *Client) UpdateRow(ctx context.Context, a1 string, row []string) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(row)}}
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, a1, body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to update range %s: %w", a1, err)
	}
	return nil
}

// SheetTitles lists the tab titles of the spreadsheet.
func (c *Client) SheetTitles(ctx context.Context) ([]string, error) {
	meta, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read spreadsheet metadata: %w", err)
	}
	titles := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// AddSheet creates a new tab with the given title.
func (c *Client) AddSheet(ctx context.Context, title string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: title},
			},
		}},
	}
	_, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to create sheet %s: %w", title, err)
	}
	return nil
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}
	return rows
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
