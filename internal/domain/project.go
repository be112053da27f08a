package domain

import (
	"fmt"
	"math"
	"time"
)

// Milestone is a named date on a project's plan.
type Milestone struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Project is the root entity. StartDate and EndDate are "YYYY-MM-DD" strings
// or empty, matching the store payload; Lead is a denormalized person name,
// not a foreign key.
type Project struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	StartDate  string             `json:"startDate"`
	EndDate    string             `json:"endDate"`
	Status     ProjectStatus      `json:"status"`
	Lead       string             `json:"lead"`
	Team       []string           `json:"team"`
	Budget     map[string]float64 `json:"budget"`
	Milestones []Milestone        `json:"milestones"`
	Dossier    Dossier            `json:"dossier"`
	Costs      CostSchedule       `json:"costs"`
	CreatedAt  time.Time          `json:"-"`
	UpdatedAt  time.Time          `json:"-"`
}

// NewBudget returns the zeroed default category map.
func NewBudget() map[string]float64 {
	b := make(map[string]float64, len(BudgetCategories))
	for _, cat := range BudgetCategories {
		b[cat] = 0
	}
	return b
}

// BudgetTotal sums the project's typed budget map.
func (p *Project) BudgetTotal() float64 {
	total := 0.0
	for _, v := range p.Budget {
		total += v
	}
	return total
}

// DossierProgress is the project's overall deliverable progress.
func (p *Project) DossierProgress() int {
	return p.Dossier.Progress()
}

// ScheduleMonths is the project's month-bucket sequence: the start..end month
// walk, or the current year's 12 months when no valid range exists. Every
// month consumer (cost schedule, personnel activation, cronogram) goes
// through this so the fallback behaves identically everywhere.
func (p *Project) ScheduleMonths() []string {
	if months := MonthsBetween(p.StartDate, p.EndDate); len(months) > 0 {
		return months
	}
	return CurrentYearMonths()
}

// DurationLabel formats the absolute day count between two dates, ceiling
// rounded, order-independent. Either date missing yields the zero sentinel.
func DurationLabel(start, end string) string {
	if start == "" || end == "" {
		return "0 días"
	}
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return "0 días"
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return "0 días"
	}
	days := int(math.Ceil(math.Abs(e.Sub(s).Hours()) / 24))
	return fmt.Sprintf("%d días", days)
}

// Duration is the project's own elapsed-duration label.
func (p *Project) Duration() string {
	return DurationLabel(p.StartDate, p.EndDate)
}
