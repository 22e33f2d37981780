package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

const recordLabelWidth = 8

// FormatRecord renders a plan record as a boxed card with identity fields
// on the left and measured quantities on the right.
func FormatRecord(r *domain.PlanRecord) string {
	left := buildIdentityPanel(r)
	right := buildQuantityPanel(r)

	spacing := "    "
	combined := lipgloss.JoinHorizontal(lipgloss.Top, left, spacing, right)

	if r.TotalArea < r.LivingArea {
		warning := StyleYellow.Render(fmt.Sprintf(
			"WARNING: total area %d SF is smaller than living area %d SF",
			r.TotalArea, r.LivingArea))
		combined += "\n" + warning
	}

	return RenderBox("", combined)
}

// buildIdentityPanel creates the left panel with the client-facing fields.
func buildIdentityPanel(r *domain.PlanRecord) string {
	var b strings.Builder

	name := r.PlanName
	if strings.TrimSpace(name) == "" {
		name = "(unnamed plan)"
	}
	b.WriteString(StyleBold.Render(name) + "\n")
	b.WriteString(SpecLevelBadge(r.SpecLevel) + "\n\n")

	b.WriteString(labelValue("CLIENT", r.ClientName, recordLabelWidth))
	b.WriteString(labelValue("DIVISION", r.ClientDivision, recordLabelWidth))
	b.WriteString(labelValue("SUBDIV", r.ClientSubdivision, recordLabelWidth))
	b.WriteString(labelValue("GARAGE", r.GarageLoading, recordLabelWidth))

	// Constrain to fixed width for consistent left panel
	return lipgloss.NewStyle().Width(36).Render(b.String())
}

// buildQuantityPanel creates the right panel with the measured quantities.
func buildQuantityPanel(r *domain.PlanRecord) string {
	var b strings.Builder

	b.WriteString(Header("Plan Data") + "\n")

	b.WriteString(labelValue("WIDTH", r.OverallWidth, recordLabelWidth))
	b.WriteString(labelValue("DEPTH", r.OverallDepth, recordLabelWidth))
	b.WriteString(labelValue("STORIES", strconv.Itoa(r.Stories), recordLabelWidth))
	b.WriteString(labelValue("BEDS", strconv.Itoa(r.Bedrooms), recordLabelWidth))
	b.WriteString(labelValue("BATHS", FormatBathCount(r.Bathrooms), recordLabelWidth))
	b.WriteString(labelValue("BAYS", strconv.Itoa(r.GarageBays), recordLabelWidth))
	b.WriteString(labelValue("LIVING", FormatSquareFeet(r.LivingArea), recordLabelWidth))
	b.WriteString(labelValue("TOTAL", FormatSquareFeet(r.TotalArea), recordLabelWidth))

	return b.String()
}

// SpecLevelBadge returns a purple-styled spec level label.
func SpecLevelBadge(level string) string {
	if strings.TrimSpace(level) == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(level)
}

// FormatBathCount renders a bath count at half-bath granularity without a
// trailing ".0" on whole counts.
func FormatBathCount(baths float64) string {
	return strconv.FormatFloat(baths, 'f', -1, 64)
}

// FormatSquareFeet renders an area with its unit.
func FormatSquareFeet(area int) string {
	return fmt.Sprintf("%d SF", area)
}
