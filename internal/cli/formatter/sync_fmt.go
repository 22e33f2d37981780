package formatter

import (
	"fmt"
	"strings"

	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/service"
)

// FormatSyncResult renders the single outcome notification for a sync run.
func FormatSyncResult(res *service.SyncResult, key domain.NaturalKey) string {
	label := keyLabel(key)

	switch res.Action {
	case service.ActionInserted:
		return StyleGreen.Render("✔ Inserted "+label) + remoteIDSuffix(res.RemoteID)
	case service.ActionUpdated:
		return StyleGreen.Render("✔ Updated "+label) + remoteIDSuffix(res.RemoteID)
	case service.ActionCancelled:
		return StyleYellow.Render("○ Cancelled") +
			Dim(" — existing row for "+label+" left unchanged")
	case service.ActionWouldInsert:
		return StyleBlue.Render("DRY RUN  ") +
			StyleFg.Render("no row matches "+label+"; sync would insert one")
	case service.ActionWouldUpdate:
		return StyleBlue.Render("DRY RUN  ") +
			StyleFg.Render("a row matches "+label+"; sync would update it") +
			remoteIDSuffix(res.RemoteID)
	default:
		return Dim(string(res.Action))
	}
}

// FormatMissingFields renders the missing-information notification for an
// incomplete record.
func FormatMissingFields(missing []string) string {
	var b strings.Builder

	b.WriteString(StyleYellow.Render("Missing required information") + "\n\n")
	for _, name := range missing {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("•"), StyleFg.Render(name)))
	}
	b.WriteString("\n" + Dim("Fill these in with: planquery attributes edit"))

	return b.String()
}

func keyLabel(key domain.NaturalKey) string {
	return fmt.Sprintf("%s / %s / %s", key.PlanName, key.SpecLevel, key.Subdivision)
}

func remoteIDSuffix(id string) string {
	if id == "" {
		return ""
	}
	return Dim(" (" + id + ")")
}
