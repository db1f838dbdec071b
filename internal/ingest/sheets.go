package ingest

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const credentialsFile = "configs/google-credentials.json"

// SheetsSource pulls an order report out of a Google Sheets range, for
// planners who maintain the export in a shared spreadsheet instead of
// uploading files.
type SheetsSource struct {
	service *sheets.Service
}

// NewSheetsSource builds a Sheets client from the service-account
// credentials in GOOGLE_SHEETS_CREDENTIALS_JSON, falling back to the
// local credentials file for development setups.
func NewSheetsSource(ctx context.Context) (*SheetsSource, error) {
	raw := []byte(os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON"))
	if len(raw) == 0 {
		b, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("google credentials not configured: %w", err)
		}
		raw = b
	}

	credentials, err := google.CredentialsFromJSON(ctx, raw, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load google credentials: %w", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &SheetsSource{service: service}, nil
}

// FetchTable reads the given range and adapts it to a source grid.
func (s *SheetsSource) FetchTable(spreadsheetID, readRange string) (Table, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Do()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read spreadsheet %s: %w", spreadsheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, rawRow := range resp.Values {
		row := make([]string, len(rawRow))
		for i, cell := range rawRow {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return Table{Name: spreadsheetID + "!" + readRange, Rows: rows}, nil
}
