package formatter

import (
	"fmt"
	"strings"

	"github.com/dperalta/projecthub/internal/domain"
)

// FormatDossier renders the full activity tree with per-activity and overall
// progress bars.
func FormatDossier(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "  " + RenderProgress(float64(p.DossierProgress())/100, 16) + "\n\n")

	for _, key := range p.Dossier.Keys() {
		a := p.Dossier[key]
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			StyleHeader.Render(fmt.Sprintf("%2d.", key)),
			Bold(a.Name),
			RenderProgress(float64(a.Progress())/100, 10)))

		for i, sub := range a.SubActivities {
			branch := "├─"
			if i == len(a.SubActivities)-1 {
				branch = "└─"
			}
			b.WriteString(fmt.Sprintf("    %s %s %s  %s\n",
				Dim(branch), sub.Name, Dim(sub.ID), RenderProgress(float64(sub.Progress)/100, 8)))
			if strings.TrimSpace(sub.Observations) != "" {
				b.WriteString(fmt.Sprintf("       %s\n", StyleYellow.Render("⚑ "+sub.Observations)))
			}
		}
	}

	return RenderBox("Expediente técnico", b.String())
}
