package domain

// MonthCost is one row of a programmed or executed cost matrix.
type MonthCost struct {
	Month     string
	Personnel float64
	Goods     float64
	Services  float64
}

// Total sums the row's categories.
func (m MonthCost) Total() float64 {
	return m.Personnel + m.Goods + m.Services
}

// ProgrammedCostMatrix computes the planned cost per month: personnel
// contributions (assignment + month-activation rule), materials active that
// month, and services active that month. Months are independent; there is no
// cumulative carry-forward.
func ProgrammedCostMatrix(p *Project, personnel []*Person, months []string) []MonthCost {
	rows := make([]MonthCost, 0, len(months))
	for _, month := range months {
		row := MonthCost{Month: month}
		for _, person := range personnel {
			row.Personnel += person.ContributionFor(p.Name, month)
		}
		for i := range p.Costs.Materials {
			if p.Costs.Materials[i].ActiveInMonth(month) {
				row.Goods += p.Costs.Materials[i].Total
			}
		}
		for i := range p.Costs.Services {
			if p.Costs.Services[i].ActiveInMonth(month) {
				row.Services += p.Costs.Services[i].Total
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ExecutedCostMatrix reads the manually recorded actuals for each month,
// treating absent cells as 0. It is never derived from the programmed matrix.
func ExecutedCostMatrix(p *Project, months []string) []MonthCost {
	rows := make([]MonthCost, 0, len(months))
	for _, month := range months {
		entry := p.Costs.Executed[month]
		rows = append(rows, MonthCost{
			Month:     month,
			Personnel: entry.Personnel,
			Goods:     entry.Goods,
			Services:  entry.Services,
		})
	}
	return rows
}

// MatrixTotals folds the rows into a single totals row.
func MatrixTotals(rows []MonthCost) MonthCost {
	total := MonthCost{Month: "TOTAL"}
	for _, r := range rows {
		total.Personnel += r.Personnel
		total.Goods += r.Goods
		total.Services += r.Services
	}
	return total
}
