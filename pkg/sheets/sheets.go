// Package sheets mirrors accepted consultation requests into a Google Sheets
// spreadsheet. The mirror is strictly best-effort: callers fire it off the
// response path, log failures, and never let it influence the HTTP outcome.
// Rows lost during a sustained outage are not replayed.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/wandergate/catalog-api/pkg/config"
	"github.com/wandergate/catalog-api/pkg/log"
	"github.com/wandergate/catalog-api/pkg/models"
)

// Mirror replicates a stored consultation request to an external row sink
type Mirror interface {
	Append(ctx context.Context, req *models.ConsultationRequest) error
}

// SheetsMirror appends consultation rows to a Google Sheets worksheet
type SheetsMirror struct {
	cfg    *config.SheetsConfig
	logger *log.Logger
	svc    *gsheets.Service
}

// NewFromConfig builds the configured mirror, or nil when mirroring is
// disabled. Authentication uses the credentials file from config (or
// GOOGLE_APPLICATION_CREDENTIALS ambient credentials when unset); the client
// is created once and reused per append.
func NewFromConfig(cfg *config.SheetsConfig, logger *log.Logger) (Mirror, error) {
	if !cfg.Enabled {
		logger.Info("Sheets mirror disabled")
		return nil, nil
	}

	opts := []option.ClientOption{
		option.WithScopes(gsheets.SpreadsheetsScope),
	}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := gsheets.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	logger.WithField("spreadsheet_id", cfg.SpreadsheetID).Info("Sheets mirror enabled")

	return &SheetsMirror{
		cfg:    cfg,
		logger: logger,
		svc:    svc,
	}, nil
}

// Append writes one consultation row to the configured worksheet. The call is
// bounded by the configured timeout; a timeout is reported as a failure like
// any other append error.
func (m *SheetsMirror) Append(ctx context.Context, req *models.ConsultationRequest) error {
	timeout := time.Duration(m.cfg.AppendTimeout) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	values := &gsheets.ValueRange{
		Values: [][]interface{}{Row(req)},
	}

	_, err := m.svc.Spreadsheets.Values.
		Append(m.cfg.SpreadsheetID, m.cfg.AppendRange(), values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append consultation row: %w", err)
	}

	return nil
}

// Row renders the fixed 7-column layout the spreadsheet expects:
// timestamp, name, email, phone, destination, travel date, additional info.
// Absent optional fields stay as empty strings.
func Row(req *models.ConsultationRequest) []interface{} {
	return []interface{}{
		req.CreatedAt.Format("2006-01-02 15:04:05"),
		req.Name,
		req.Email,
		req.Phone,
		req.Destination,
		req.TravelDate,
		req.AdditionalInfo,
	}
}

var _ Mirror = (*SheetsMirror)(nil)
