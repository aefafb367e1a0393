// Package google loads the inventory from a Google Sheets copy of the
// workbook, for deployments where the municipality maintains the data
// in Drive instead of shipping an .xlsx with the binary.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/FiliRodrigues/Araras/internal/core"
)

type Loader struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheet         string
}

// New builds a loader over an existing Sheets service.
func New(svc *gsheet.Service, spreadsheetID, sheet string) *Loader {
	return &Loader{svc: svc, spreadsheetID: spreadsheetID, sheet: sheet}
}

// NewFromEnv creates a loader using Service Account credentials from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context, spreadsheetID, sheet string) (*Loader, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return New(svc, spreadsheetID, sheet), nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentials []byte
	switch {
	case inline != "":
		credentials = []byte(inline)
	case file != "":
		var err error
		credentials, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	return gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
}

func (l *Loader) SourceID() string {
	return "sheets:" + l.spreadsheetID + "#" + l.sheet
}

func (l *Loader) Load(ctx context.Context) (core.Dataset, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, l.sheet).Context(ctx).Do()
	if err != nil {
		// 404 covers both an unknown spreadsheet and an unknown sheet
		// range; the API does not distinguish them for the caller.
		if strings.Contains(err.Error(), "404") || strings.Contains(err.Error(), "Unable to parse range") {
			return nil, &core.NotFoundError{Source: l.spreadsheetID + "#" + l.sheet, Err: err}
		}
		return nil, fmt.Errorf("read values %s!%s: %w", l.spreadsheetID, l.sheet, err)
	}
	return parseValues(resp.Values)
}
