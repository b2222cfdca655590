// Package excel exports sweep results to .xlsx workbooks, one sheet per
// test family.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"critval/app"
	"critval/internal/errors"
)

// SweepWriter writes sweep results to a single workbook.
type SweepWriter struct {
	filePath string
}

// NewSweepWriter creates a writer targeting the given .xlsx path.
func NewSweepWriter(filePath string) *SweepWriter {
	return &SweepWriter{filePath: filePath}
}

var sheetHeader = []interface{}{"n", "conf_level", "critical_quantile", "critical_effect", "corrected_effect"}

// Write persists the given sweeps, replacing any existing file at the
// writer's path.
func (w *SweepWriter) Write(results []*app.SweepResult) error {
	if len(results) == 0 {
		return errors.InvalidInput("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, result := range results {
		sheet := string(result.Family)
		if i == 0 {
			// replace the default sheet rather than leaving it empty
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return errors.Wrap(err, "renaming default sheet")
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return errors.Wrapf(err, "creating sheet %s", sheet)
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &sheetHeader); err != nil {
			return errors.Wrapf(err, "writing header for %s", sheet)
		}

		for rowIdx, row := range result.Rows {
			cell := fmt.Sprintf("A%d", rowIdx+2)
			values := []interface{}{row.N, row.ConfLevel, row.CriticalQuantile, row.CriticalEffect, row.CorrectedEffect}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return errors.Wrapf(err, "writing row %d for %s", rowIdx, sheet)
			}
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return errors.Wrapf(err, "saving workbook %s", w.filePath)
	}
	return nil
}
