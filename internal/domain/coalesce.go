package domain

import "strconv"

// coerceNumber parses a raw form value, falling back when empty or malformed.
func coerceNumber(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// CoerceAmount converts a loosely typed store value to a number, degrading to
// 0 for anything non-numeric. Store payloads carry no schema, so amounts may
// arrive as floats, ints, numeric strings, or nothing at all.
func CoerceAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// BudgetTotal sums every value of a category-keyed amount map, coercing
// non-numeric or missing entries to 0.
func BudgetTotal(budget map[string]any) float64 {
	total := 0.0
	for _, v := range budget {
		total += CoerceAmount(v)
	}
	return total
}
