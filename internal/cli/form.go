package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/teflaherty67/PlanQuery/internal/cli/formatter"
	"github.com/teflaherty67/PlanQuery/internal/config"
	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// planqueryHuhTheme returns the Gruvbox-flavored huh theme used by every
// interactive form.
func planqueryHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// attributeFormValues carries the six form fields through a huh run.
type attributeFormValues struct {
	PlanName      string
	SpecLevel     string
	ClientName    string
	Division      string
	Subdivision   string
	GarageLoading string
}

func (v *attributeFormValues) asMap() map[string]string {
	return map[string]string{
		domain.AttrPlanName:      strings.TrimSpace(v.PlanName),
		domain.AttrSpecLevel:     strings.TrimSpace(v.SpecLevel),
		domain.AttrClientName:    strings.TrimSpace(v.ClientName),
		domain.AttrDivision:      strings.TrimSpace(v.Division),
		domain.AttrSubdivision:   strings.TrimSpace(v.Subdivision),
		domain.AttrGarageLoading: strings.TrimSpace(v.GarageLoading),
	}
}

// newAttributesForm builds the six-field edit form, seeded from the
// current attribute values. Selection lists come from configuration;
// fields whose list is empty fall back to free-form input.
func newAttributesForm(current map[string]string, opts config.Options) (*huh.Form, *attributeFormValues) {
	v := &attributeFormValues{
		PlanName:      current[domain.AttrPlanName],
		SpecLevel:     current[domain.AttrSpecLevel],
		ClientName:    current[domain.AttrClientName],
		Division:      current[domain.AttrDivision],
		Subdivision:   current[domain.AttrSubdivision],
		GarageLoading: current[domain.AttrGarageLoading],
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(domain.AttrPlanName).
				Value(&v.PlanName).
				Validate(validateRequired(domain.AttrPlanName)),
			selectOrInput(domain.AttrSpecLevel, opts.SpecLevels, &v.SpecLevel, true),
			selectOrInput(domain.AttrClientName, opts.ClientNames, &v.ClientName, true),
			selectOrInput(domain.AttrDivision, opts.Divisions, &v.Division, true),
			huh.NewInput().
				Title(domain.AttrSubdivision).
				Value(&v.Subdivision).
				Validate(validateRequired(domain.AttrSubdivision)),
			selectOrInput(domain.AttrGarageLoading, opts.GarageLoading, &v.GarageLoading, false),
		),
	).WithTheme(planqueryHuhTheme()).WithShowHelp(false)

	return form, v
}

// selectOrInput returns a select over the configured list, or a free-form
// input when no list is configured. The current value is kept selectable
// even when the list does not contain it.
func selectOrInput(title string, list []string, value *string, required bool) huh.Field {
	if len(list) == 0 {
		in := huh.NewInput().Title(title).Value(value)
		if required {
			in = in.Validate(validateRequired(title))
		}
		return in
	}

	options := make([]huh.Option[string], 0, len(list)+2)
	if !required {
		options = append(options, huh.NewOption("(not set)", ""))
	}
	seen := false
	for _, item := range list {
		if item == *value {
			seen = true
		}
		options = append(options, huh.NewOption(item, item))
	}
	if !seen && *value != "" {
		options = append(options, huh.NewOption(*value, *value))
	}

	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(value)
}

// confirmForm builds a themed yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Update").
				Negative("Cancel").
				Value(result),
		),
	).WithTheme(planqueryHuhTheme()).WithShowHelp(false)
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", strings.ToLower(name))
		}
		return nil
	}
}
