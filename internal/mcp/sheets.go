package mcp

import (
	"context"
	"time"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/gradnex/pkg/sheets"
)

var sheetHeader = []any{"Title", "Company", "Location", "Type", "Salary", "Source", "Link", "Snippet"}

type sheetWriter interface {
	AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error)
	ReplaceRows(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error)
}

// SheetsExporter adapts the Sheets client to the sheets_export tool
type SheetsExporter struct {
	writer sheetWriter
	now    func() time.Time
}

func NewSheetsExporter(client *sheetsclient.Client) *SheetsExporter {
	return &SheetsExporter{writer: client, now: time.Now}
}

func (e *SheetsExporter) Export(ctx context.Context, params tools.SheetsExportParams) (tools.SheetsExportResult, error) {
	tab := params.Sheet.Tab
	if tab == "" {
		tab = sheetsclient.DefaultTab
	}

	result := tools.SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           tab,
		Mode:          "append",
	}

	rows := jobRows(params.Jobs)

	var (
		written int
		err     error
	)
	if params.ClearTab {
		result.Mode = "replace"
		written, err = e.writer.ReplaceRows(ctx, params.Sheet.SpreadsheetID, tab, append([][]any{sheetHeader}, rows...))
		written-- // header
	} else {
		written, err = e.writer.AppendRows(ctx, params.Sheet.SpreadsheetID, tab, rows)
	}
	if err != nil {
		return result, err
	}

	result.WrittenRows = max(written, 0)
	result.CompletedAt = e.now().UTC()
	return result, nil
}

func jobRows(jobs []domain.JobRecord) [][]any {
	rows := make([][]any, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []any{
			j.Title,
			j.Company,
			j.Location,
			j.Type,
			j.Salary,
			j.Source,
			j.Link,
			j.Snippet,
		})
	}
	return rows
}
