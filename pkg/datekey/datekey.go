// Package datekey handles calendar date keys in YYYY-MM-DD form.
// Keys sort lexicographically in calendar order.
package datekey

import (
	"errors"
	"time"

	errorvalues "github.com/limbo/glowlog/internal/error_values"
)

const Layout = "2006-01-02"

// Parse returns midnight UTC of the key's date
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return time.Time{}, errors.Join(errorvalues.ErrInvalidDate, err)
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Valid reports whether key is a real calendar date in canonical form
func Valid(key string) bool {
	t, err := time.Parse(Layout, key)
	return err == nil && t.Format(Layout) == key
}

// Today returns the local calendar date of now
func Today(now time.Time) string {
	return now.Format(Layout)
}

// Shift adds days (may be negative) to the key
func Shift(key string, days int) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, days)), nil
}
