package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

// SheetTarget identifies the destination spreadsheet tab
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, default Sheet1"`
}

// SheetsExportParams defines the arguments for the sheets_export tool. The
// gateway keeps no job records, so callers pass the jobs they want written.
type SheetsExportParams struct {
	Jobs     []domain.JobRecord `json:"jobs" jsonschema:"Job records as returned by job_search"`
	Sheet    SheetTarget        `json:"sheet" jsonschema:"Destination sheet information"`
	ClearTab bool               `json:"clear_tab,omitempty" jsonschema:"Replace the tab contents, header included, instead of appending"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab,omitempty"`
	WrittenRows   int       `json:"written_rows"`
	Mode          string    `json:"mode" jsonschema:"append or replace"`
	CompletedAt   time.Time `json:"completed_at"`
}

// SheetsExporter writes job records to a spreadsheet
type SheetsExporter interface {
	Export(ctx context.Context, params SheetsExportParams) (SheetsExportResult, error)
}

type sheetsExportTool struct {
	exporter SheetsExporter
	logger   *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(exporter SheetsExporter) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{exporter: exporter, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Write job records returned by job_search to a Google Sheets tab",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || strings.TrimSpace(params.Sheet.SpreadsheetID) == "" {
		return errorResult("sheets_export", errors.New("sheet.spreadsheet_id is required")), nil, nil
	}
	if len(params.Jobs) == 0 {
		return textResult("[sheets_export] no jobs to export"), SheetsExportResult{
			SpreadsheetID: params.Sheet.SpreadsheetID,
			Tab:           params.Sheet.Tab,
			Mode:          "noop",
			CompletedAt:   time.Now().UTC(),
		}, nil
	}

	t.logger.Info("sheets_export request",
		"spreadsheet_id", params.Sheet.SpreadsheetID,
		"tab", params.Sheet.Tab,
		"jobs", len(params.Jobs),
		"clear_tab", params.ClearTab,
	)

	result, err := t.exporter.Export(ctx, *params)
	if err != nil {
		t.logger.Error("sheets_export failed", "err", err)
		return errorResult("sheets_export", err), nil, nil
	}

	msg := fmt.Sprintf("[sheets_export] wrote %d row(s) to %s (%s)", result.WrittenRows, params.Sheet.SpreadsheetID, result.Mode)
	return textResult(msg), result, nil
}
