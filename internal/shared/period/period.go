// Package period handles "YYYY-MM" payroll month keys.
package period

import (
	"fmt"
	"time"
)

const layout = "2006-01"

// Parse validates a "YYYY-MM" month key.
func Parse(v string) (time.Time, error) {
	t, err := time.Parse(layout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", v)
	}
	return t, nil
}

// Normalize returns the canonical key for v. Single-digit months are rejected.
func Normalize(v string) (string, error) {
	t, err := Parse(v)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

func Of(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func Current(now time.Time) string {
	return now.Format(layout)
}
