package formatter

import (
	"fmt"
	"strings"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

const attributeLabelWidth = 14

// FormatAttributes renders the managed project attributes and their
// current model values.
func FormatAttributes(values map[string]string) string {
	var b strings.Builder

	b.WriteString(Header("Project Attributes") + "\n")
	for _, name := range domain.ProjectAttributes {
		b.WriteString(labelValue(name, values[name], attributeLabelWidth))
	}

	return b.String()
}

// FormatAddedAttributes renders the outcome of ensuring the managed
// attributes exist on the model.
func FormatAddedAttributes(added []string) string {
	if len(added) == 0 {
		return Dim("All project attributes already exist on the model.")
	}

	var b strings.Builder
	noun := "attributes"
	if len(added) == 1 {
		noun = "attribute"
	}
	b.WriteString(StyleGreen.Render(fmt.Sprintf("✔ Added %d project %s", len(added), noun)) + "\n")
	for _, name := range added {
		b.WriteString("  " + StyleFg.Render(name) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
