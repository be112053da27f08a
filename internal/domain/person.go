package domain

import "time"

// MaxAssignedProjects caps how many projects a lead may hold at once.
const MaxAssignedProjects = 3

// Person is a member of the office. Leads (see IsLead) may hold project
// assignments and a set of subordinate ids; everyone may carry per-project
// month-activation sets used for cost allocation.
type Person struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Role         string              `json:"role"`
	Phone        string              `json:"phone"`
	MonthlyRate  float64             `json:"monthlyRate"`
	Projects     []string            `json:"projects"`
	Subordinates []string            `json:"subordinates"`
	ActiveMonths map[string][]string `json:"activeMonths"`
	CreatedAt    time.Time           `json:"-"`
	UpdatedAt    time.Time           `json:"-"`
}

// IsLead reports whether the person's role qualifies them as a lead.
func (p *Person) IsLead() bool {
	return IsLeadRole(p.Role)
}

// ToggleProject removes the project name if assigned, otherwise appends it.
// A fourth concurrent assignment is rejected.
func (p *Person) ToggleProject(projectName string) error {
	for i, name := range p.Projects {
		if name == projectName {
			p.Projects = append(p.Projects[:i], p.Projects[i+1:]...)
			return nil
		}
	}
	if len(p.Projects) >= MaxAssignedProjects {
		return Validationf("máximo %d proyectos permitidos", MaxAssignedProjects)
	}
	p.Projects = append(p.Projects, projectName)
	return nil
}

// ToggleSubordinate adds or removes an id from the subordinate set. Nothing
// prevents a person from appearing under several leads or under themselves;
// both are tolerated as in the source system.
func (p *Person) ToggleSubordinate(id string) {
	for i, sub := range p.Subordinates {
		if sub == id {
			p.Subordinates = append(p.Subordinates[:i], p.Subordinates[i+1:]...)
			return
		}
	}
	p.Subordinates = append(p.Subordinates, id)
}

// ToggleMonth adds or removes a month key from the person's activation set
// for the named project, creating the set lazily.
func (p *Person) ToggleMonth(projectName, month string) {
	if p.ActiveMonths == nil {
		p.ActiveMonths = make(map[string][]string)
	}
	months := p.ActiveMonths[projectName]
	for i, m := range months {
		if m == month {
			p.ActiveMonths[projectName] = append(months[:i], months[i+1:]...)
			return
		}
	}
	p.ActiveMonths[projectName] = append(months, month)
}

// AssignedTo reports whether the person holds the named project.
func (p *Person) AssignedTo(projectName string) bool {
	for _, name := range p.Projects {
		if name == projectName {
			return true
		}
	}
	return false
}

// ActiveInMonth reports whether the person counts for cost allocation in the
// given month of the named project. An empty activation set means always
// active; once any month is toggled on, only listed months count.
func (p *Person) ActiveInMonth(projectName, month string) bool {
	months := p.ActiveMonths[projectName]
	if len(months) == 0 {
		return true
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

// ContributionFor returns the person's programmed cost for one month of a
// project: the full monthly compensation when assigned and active, else 0.
func (p *Person) ContributionFor(projectName, month string) float64 {
	if !p.AssignedTo(projectName) || !p.ActiveInMonth(projectName, month) {
		return 0
	}
	return p.MonthlyRate
}

// ClassifyRoles computes each person's org-chart kind in one pass: leads by
// role predicate, subordinates by membership in any lead's subordinate set,
// everyone else unassigned.
func ClassifyRoles(all []*Person) map[string]RoleKind {
	kinds := make(map[string]RoleKind, len(all))
	referenced := make(map[string]bool)
	for _, p := range all {
		if p.IsLead() {
			for _, sub := range p.Subordinates {
				referenced[sub] = true
			}
		}
	}
	for _, p := range all {
		switch {
		case p.IsLead():
			kinds[p.ID] = KindLead
		case referenced[p.ID]:
			kinds[p.ID] = KindSubordinate
		default:
			kinds[p.ID] = KindUnassigned
		}
	}
	return kinds
}

// UnassignedPersonnel returns people who are not leads and are referenced by
// no lead's subordinate set, preserving input order.
func UnassignedPersonnel(all []*Person) []*Person {
	kinds := ClassifyRoles(all)
	var out []*Person
	for _, p := range all {
		if kinds[p.ID] == KindUnassigned {
			out = append(out, p)
		}
	}
	return out
}

// BossOf scans all leads' subordinate sets for the person's id. The reverse
// pointer is never stored; with the multi-lead quirk tolerated, the first
// lead in input order wins.
func BossOf(all []*Person, personID string) *Person {
	for _, p := range all {
		if !p.IsLead() {
			continue
		}
		for _, sub := range p.Subordinates {
			if sub == personID {
				return p
			}
		}
	}
	return nil
}
