package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween_SameMonth(t *testing.T) {
	assert.Equal(t, []string{"2025-03"}, MonthsBetween("2025-03-05", "2025-03-28"))
}

func TestMonthsBetween_YearWrap(t *testing.T) {
	months := MonthsBetween("2025-11-15", "2026-02-01")
	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01", "2026-02"}, months)
}

func TestMonthsBetween_ZeroPadding(t *testing.T) {
	months := MonthsBetween("2025-01-01", "2025-09-30")
	assert.Equal(t, "2025-01", months[0])
	assert.Equal(t, "2025-09", months[len(months)-1])
}

func TestMonthsBetween_MissingDates(t *testing.T) {
	assert.Empty(t, MonthsBetween("", "2025-03-01"))
	assert.Empty(t, MonthsBetween("2025-03-01", ""))
	assert.Empty(t, MonthsBetween("", ""))
}

func TestMonthsBetween_MalformedDates(t *testing.T) {
	assert.Empty(t, MonthsBetween("not-a-date", "2025-03-01"))
	assert.Empty(t, MonthsBetween("2025-03-01", "03/2025"))
}

func TestCurrentYearMonths_TwelveKeys(t *testing.T) {
	months := CurrentYearMonths()
	assert.Len(t, months, 12)
	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("%d-01", year), months[0])
	assert.Equal(t, fmt.Sprintf("%d-12", year), months[11])
}

func TestScheduleMonths_FallsBackToCurrentYear(t *testing.T) {
	p := &Project{}
	months := p.ScheduleMonths()
	assert.Equal(t, CurrentYearMonths(), months)
}

func TestScheduleMonths_UsesProjectRange(t *testing.T) {
	p := &Project{StartDate: "2025-02-01", EndDate: "2025-04-30"}
	assert.Equal(t, []string{"2025-02", "2025-03", "2025-04"}, p.ScheduleMonths())
}
