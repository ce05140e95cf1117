package utils

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidDateToken is returned for date tokens that are not 6 or 8
// digits, or do not parse as a calendar date.
var ErrInvalidDateToken = errors.New("invalid date, expected ddmmyy or ddmmyyyy")

// ParseDateToken parses a user-supplied date token (ddmmyy or ddmmyyyy)
// into a date in the given location.
func ParseDateToken(token string, loc *time.Location) (time.Time, error) {
	for _, r := range token {
		if r < '0' || r > '9' {
			return time.Time{}, ErrInvalidDateToken
		}
	}

	var layout string
	switch len(token) {
	case 6:
		layout = "020106"
	case 8:
		layout = "02012006"
	default:
		return time.Time{}, ErrInvalidDateToken
	}

	t, err := time.ParseInLocation(layout, token, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateToken
	}

	return t, nil
}

// DaysBetween returns the number of whole calendar days from one date to
// another, each truncated to midnight in its own location. Rounding
// absorbs DST days that are 23 or 25 hours long.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	return int(math.Round(t.Sub(f).Hours() / 24))
}
