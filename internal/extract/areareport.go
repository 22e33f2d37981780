package extract

import (
	"strconv"
	"strings"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// Labels of the two subtotal rows the extractor reads from the floor-area
// schedule. Matching is case-insensitive after trimming.
const (
	livingLabel       = "Living"
	totalCoveredLabel = "Total Covered"
)

// reportTitlePrefix identifies the floor-area schedule among the model's
// reports.
const reportTitlePrefix = "floor areas"

// TotalArea returns the "Total Covered" subtotal of the report in square
// feet, or 0 when the report has no such row or its value does not parse.
func TotalArea(report *domain.Report) int {
	if report == nil {
		return 0
	}
	for i := range report.Rows {
		if labelEquals(report.Label(i), totalCoveredLabel) {
			return parseAreaValue(report.Value(i))
		}
	}
	return 0
}

// LivingArea returns the "Living" subtotal of the report in square feet.
//
// A single-story schedule carries the value on the Living row itself. A
// multi-story schedule leaves that cell blank, lists one row per floor,
// then closes the section with a blank-label subtotal row; the scan walks
// forward to that subtotal. A non-blank label without "Floor" in it marks
// the start of an unrelated section and ends the scan. Returns 0 when no
// Living subtotal can be located.
func LivingArea(report *domain.Report) int {
	if report == nil {
		return 0
	}
	for i := range report.Rows {
		if !labelEquals(report.Label(i), livingLabel) {
			continue
		}

		if v := strings.TrimSpace(report.Value(i)); v != "" {
			return parseAreaValue(v)
		}

		for j := i + 1; j < len(report.Rows); j++ {
			label := strings.TrimSpace(report.Label(j))
			value := strings.TrimSpace(report.Value(j))
			if label == "" && value != "" {
				return parseAreaValue(value)
			}
			if label != "" && !containsFold(label, "floor") {
				return 0
			}
		}
		return 0
	}
	return 0
}

// FindAreaReport locates the floor-area schedule: the first report whose
// title starts with "Floor Areas" (case-insensitive) and that carries at
// least one numeric, non-zero value in its last column. Reports that only
// repeat the headers of an empty schedule are skipped.
func FindAreaReport(reports []domain.Report) (*domain.Report, bool) {
	for i := range reports {
		title := strings.ToLower(strings.TrimSpace(reports[i].Title))
		if !strings.HasPrefix(title, reportTitlePrefix) {
			continue
		}
		if hasAreaValues(&reports[i]) {
			return &reports[i], true
		}
	}
	return nil, false
}

func hasAreaValues(report *domain.Report) bool {
	for i := range report.Rows {
		if parseAreaValue(report.Value(i)) != 0 {
			return true
		}
	}
	return false
}

// parseAreaValue reads an area cell like "2206 SF" as an integer number of
// square feet. Malformed cells parse as 0; the schedule is printed output
// and a bad cell is never worth failing an extraction over.
func parseAreaValue(cell string) int {
	s := strings.ReplaceAll(cell, "SF", "")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func labelEquals(label, want string) bool {
	return strings.EqualFold(strings.TrimSpace(label), want)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
