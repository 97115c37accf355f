package domain

import (
	"address-book/errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Birthday is a validated dd/mm/yyyy date. The empty string is the "unset" value.
type Birthday struct {
	raw   string
	day   int
	month time.Month
	year  int
}

// NewBirthday parses raw as day/month/year. An empty raw is accepted and yields
// an unset Birthday.
func NewBirthday(raw string) (Birthday, error) {
	if raw == "" {
		return Birthday{}, nil
	}
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return Birthday{}, fmt.Errorf("%w: %q", errors.ErrInvalidBirthday, raw)
	}
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Birthday{}, fmt.Errorf("%w: %q", errors.ErrInvalidBirthday, raw)
		}
		values[i] = v
	}
	day, month, year := values[0], values[1], values[2]
	if !isCalendarDate(year, month, day) {
		return Birthday{}, fmt.Errorf("%w: %q is not a calendar date", errors.ErrInvalidBirthday, raw)
	}
	return Birthday{raw: raw, day: day, month: time.Month(month), year: year}, nil
}

// isCalendarDate reports whether the triple survives time.Date without being
// normalized into another date.
func isCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == time.Month(month) && t.Day() == day
}

func (b Birthday) IsZero() bool {
	return b.raw == ""
}

func (b Birthday) Day() int {
	return b.day
}

func (b Birthday) Month() time.Month {
	return b.month
}

func (b Birthday) Year() int {
	return b.year
}

// String returns the value exactly as it was supplied.
func (b Birthday) String() string {
	return b.raw
}
