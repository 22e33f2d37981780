package extract

import (
	"strings"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// Source is the read-only view of the host design model the extractor
// consumes. Implementations return plain data; the extractor never walks
// host objects directly.
type Source interface {
	// Attribute looks up a named project-level attribute. The second
	// return reports whether the attribute exists at all.
	Attribute(name string) (string, bool)
	Walls() []domain.Wall
	Levels() []domain.Level
	Rooms() []domain.Room
	Reports() []domain.Report
}

// zeroDimension is the formatted extent of a model with no walls.
const zeroDimension = `0'-0"`

// Level names containing any of these fragments are datums rather than
// stories and stay out of the story count.
var nonStoryLevelNames = []string{"roof", "foundation", "base", "plate"}

// Build assembles a PlanRecord from live model state. Missing inputs
// become safe defaults (empty strings, zero counts, zero-foot extents);
// Build itself never fails. Callers decide whether the result is complete
// enough to synchronize via PlanRecord.MissingFields.
func Build(src Source) *domain.PlanRecord {
	record := &domain.PlanRecord{
		PlanName:          attributeOrEmpty(src, domain.AttrPlanName),
		SpecLevel:         attributeOrEmpty(src, domain.AttrSpecLevel),
		ClientName:        attributeOrEmpty(src, domain.AttrClientName),
		ClientDivision:    attributeOrEmpty(src, domain.AttrDivision),
		ClientSubdivision: attributeOrEmpty(src, domain.AttrSubdivision),
		GarageLoading:     attributeOrEmpty(src, domain.AttrGarageLoading),
	}

	record.OverallWidth, record.OverallDepth = overallExtents(src.Walls())
	record.Stories = countStories(src.Levels())

	counts := ClassifyRooms(src.Rooms())
	record.Bedrooms = counts.Bedrooms
	record.Bathrooms = counts.Bathrooms()
	record.GarageBays = counts.GarageBays

	if report, ok := FindAreaReport(src.Reports()); ok {
		record.LivingArea = LivingArea(report)
		record.TotalArea = TotalArea(report)
	}

	return record
}

// overallExtents returns the formatted width and depth of the union
// bounding extent of all walls.
func overallExtents(walls []domain.Wall) (width, depth string) {
	if len(walls) == 0 {
		return zeroDimension, zeroDimension
	}

	bounds := walls[0].Bounds
	for _, w := range walls[1:] {
		if w.Bounds.Min.X < bounds.Min.X {
			bounds.Min.X = w.Bounds.Min.X
		}
		if w.Bounds.Min.Y < bounds.Min.Y {
			bounds.Min.Y = w.Bounds.Min.Y
		}
		if w.Bounds.Max.X > bounds.Max.X {
			bounds.Max.X = w.Bounds.Max.X
		}
		if w.Bounds.Max.Y > bounds.Max.Y {
			bounds.Max.Y = w.Bounds.Max.Y
		}
	}

	width = FormatDimension(bounds.Max.X - bounds.Min.X)
	depth = FormatDimension(bounds.Max.Y - bounds.Min.Y)
	return width, depth
}

// countStories counts the levels that represent habitable stories,
// skipping roof, foundation, base, and plate datums.
func countStories(levels []domain.Level) int {
	stories := 0
	for _, level := range levels {
		name := strings.ToLower(level.Name)
		datum := false
		for _, fragment := range nonStoryLevelNames {
			if strings.Contains(name, fragment) {
				datum = true
				break
			}
		}
		if !datum {
			stories++
		}
	}
	return stories
}

func attributeOrEmpty(src Source, name string) string {
	value, ok := src.Attribute(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
