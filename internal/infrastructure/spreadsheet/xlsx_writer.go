package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

const sheetName = "Filtered Data"

// xlsxWriter implements the SpreadsheetWriter interface with excelize.
type xlsxWriter struct {
	logger logger.Logger
}

// NewXLSXWriter creates a new SpreadsheetWriter producing xlsx workbooks.
func NewXLSXWriter(logger logger.Logger) (lending.SpreadsheetWriter, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &xlsxWriter{logger: logger}, nil
}

// Write serializes the view into a single-sheet workbook: header row plus one
// row per record in column order, no index column. Deterministic for
// identical input views.
func (w *xlsxWriter) Write(view *lending.View) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for i, column := range view.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, column); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", column, err)
		}
	}

	for rowIdx, record := range view.Records {
		for colIdx, column := range view.Columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(&record, column)); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowIdx+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	w.logger.Info("view exported to spreadsheet with ", len(view.Records), " rows and ", len(view.Columns), " columns")
	return buf.Bytes(), nil
}

// cellValue keeps dates and loan durations typed in the workbook; every
// other column is exported as its raw text.
func cellValue(record *lending.Record, column string) interface{} {
	switch column {
	case lending.ColumnIssueDate:
		if record.IssueDate != nil {
			return record.IssueDate.Format("2006-01-02")
		}
	case lending.ColumnDueDate:
		if record.DueDate != nil {
			return record.DueDate.Format("2006-01-02")
		}
	case lending.ColumnReturnDate:
		if record.ReturnDate != nil {
			return record.ReturnDate.Format("2006-01-02")
		}
	case lending.ColumnDaysOnLoan:
		if record.DaysOnLoan != nil {
			return *record.DaysOnLoan
		}
	}
	return record.Field(column)
}
