package validation

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// NormalizeDate validates a calendar date and returns its canonical
// YYYY-MM-DD form. Days are keyed on this string; no time component survives.
func NormalizeDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format("2006-01-02"), nil
}
