package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// MonthKey formats a year/month pair as a zero-padded "YYYY-MM" key.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// MonthsBetween walks month by month from the start month to the end month
// inclusive, wrapping the year on overflow. Either date missing or malformed
// yields an empty sequence; callers apply their own fallback.
func MonthsBetween(start, end string) []string {
	if start == "" || end == "" {
		return nil
	}
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil
	}

	year, month := s.Year(), s.Month()
	endYear, endMonth := e.Year(), e.Month()

	var months []string
	for year < endYear || (year == endYear && month <= endMonth) {
		months = append(months, MonthKey(year, month))
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return months
}

// CurrentYearMonths returns the 12 months of the current calendar year,
// the fallback applied wherever a project lacks a valid date range.
func CurrentYearMonths() []string {
	year := time.Now().Year()
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, MonthKey(year, m))
	}
	return months
}
