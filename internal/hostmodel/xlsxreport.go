package hostmodel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// LoadReportsXLSX reads a spreadsheet schedule export into reports, one
// per worksheet. The sheet name becomes the report title and every cell
// arrives as its displayed text, which is what the report parser expects.
func LoadReportsXLSX(path string) ([]domain.Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening report file: %w", err)
	}
	defer f.Close()

	var reports []domain.Report
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}
		reports = append(reports, domain.Report{Title: sheet, Rows: rows})
	}
	return reports, nil
}
