package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

const timestampLayout = time.RFC3339

// encodeJSON marshals a payload column value, mapping nil collections to
// their empty JSON form so reads never see SQL-level NULLs.
func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}
	return string(b), nil
}

// decodeJSON unmarshals a payload column into out, treating the empty string
// as the zero value.
func decodeJSON(raw string, out any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTimestamp parses an RFC3339 column, returning the zero time on failure.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
