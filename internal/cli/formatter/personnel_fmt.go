package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dperalta/projecthub/internal/domain"
)

// FormatOrgChart renders leads with their subordinates indented below, then
// the unassigned pool.
func FormatOrgChart(personnel []*domain.Person) string {
	kinds := domain.ClassifyRoles(personnel)
	byID := make(map[string]*domain.Person, len(personnel))
	for _, p := range personnel {
		byID[p.ID] = p
	}

	var b strings.Builder
	for _, p := range personnel {
		if kinds[p.ID] != domain.KindLead {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", Bold(p.Name), TruncID(p.ID), RoleBadge(p.Role)))
		for _, projectName := range p.Projects {
			b.WriteString(Dim("  » ") + projectName + "\n")
		}
		for i, subID := range p.Subordinates {
			sub, ok := byID[subID]
			if !ok {
				continue
			}
			branch := "├─"
			if i == len(p.Subordinates)-1 {
				branch = "└─"
			}
			b.WriteString(fmt.Sprintf("  %s %s %s  %s\n", Dim(branch), sub.Name, TruncID(sub.ID), RoleBadge(sub.Role)))
		}
		b.WriteString("\n")
	}

	unassigned := domain.UnassignedPersonnel(personnel)
	if len(unassigned) > 0 {
		b.WriteString(Header("Sin asignar") + "\n")
		for _, p := range unassigned {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", p.Name, TruncID(p.ID), RoleBadge(p.Role)))
		}
	}

	return RenderBox("Personal", b.String())
}

// ReportRow is one person × project pairing of the personnel report.
type ReportRow struct {
	Project string
	Person  *domain.Person
}

// PersonnelReportRows flattens personnel into person × assigned-project rows:
// a lead's own assignments plus project team memberships, de-duplicated, with
// a "Sin Asignar" fallback for people on no project, sorted by project name.
func PersonnelReportRows(projects []*domain.Project, personnel []*domain.Person) []ReportRow {
	seen := make(map[string]bool)
	var rows []ReportRow
	add := func(project string, p *domain.Person) {
		key := project + "\x00" + p.ID
		if seen[key] {
			return
		}
		seen[key] = true
		rows = append(rows, ReportRow{Project: project, Person: p})
	}

	byName := make(map[string]*domain.Person, len(personnel))
	for _, p := range personnel {
		byName[p.Name] = p
	}

	for _, p := range personnel {
		for _, projectName := range p.Projects {
			add(projectName, p)
		}
	}
	for _, project := range projects {
		for _, member := range project.Team {
			if p, ok := byName[member]; ok {
				add(project.Name, p)
			}
		}
	}
	for _, p := range personnel {
		assigned := false
		for _, r := range rows {
			if r.Person.ID == p.ID {
				assigned = true
				break
			}
		}
		if !assigned {
			add("Sin Asignar", p)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Project < rows[j].Project
	})
	return rows
}

// FormatPersonnelReport renders the flattened person × project table.
func FormatPersonnelReport(projects []*domain.Project, personnel []*domain.Person) string {
	rows := PersonnelReportRows(projects, personnel)

	headers := []string{"PROYECTO", "NOMBRE", "CARGO", "TELÉFONO", "MENSUAL"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		project := r.Project
		if project == "Sin Asignar" {
			project = Dim(project)
		}
		cells = append(cells, []string{
			project,
			r.Person.Name,
			RoleBadge(r.Person.Role),
			r.Person.Phone,
			Money(r.Person.MonthlyRate),
		})
	}

	return RenderBox("Reporte de personal", RenderTable(headers, cells))
}
