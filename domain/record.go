// Package domain contains the contact model of the address book.
// Records own their phone numbers and birthday; fields are always validated
// before they are stored.
package domain

import (
	"address-book/errors"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
)

const oneDay = 24 * time.Hour

// Record is one contact: an immutable name, an ordered list of distinct phone
// numbers and an optional birthday.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday Birthday
}

func NewRecord(name string) (*Record, error) {
	if name == "" {
		return nil, errors.ErrEmptyName
	}
	return &Record{name: name}, nil
}

func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []PhoneNumber {
	return slices.Clone(r.phones)
}

func (r *Record) PhoneStrings() []string {
	return lo.Map(r.phones, func(p PhoneNumber, _ int) string {
		return p.String()
	})
}

// HasPhone compares literal values, no normalization.
func (r *Record) HasPhone(raw string) bool {
	return lo.ContainsBy(r.phones, func(p PhoneNumber) bool {
		return p.String() == raw
	})
}

// AddPhone validates raw and appends it unless the same literal is already stored.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	if r.HasPhone(raw) {
		return nil
	}
	r.phones = append(r.phones, phone)
	return nil
}

func (r *Record) RemovePhone(raw string) {
	if i := r.indexOf(raw); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
}

// ChangePhone replaces oldRaw with newRaw in place. Nothing happens when oldRaw
// is not stored; an invalid newRaw leaves the entry untouched.
func (r *Record) ChangePhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return nil
	}
	phone, err := NewPhoneNumber(newRaw)
	if err != nil {
		return err
	}
	r.phones[i] = phone
	return nil
}

func (r *Record) indexOf(raw string) int {
	_, i, _ := lo.FindIndexOf(r.phones, func(p PhoneNumber) bool {
		return p.String() == raw
	})
	return i
}

// AddBirthday replaces any existing birthday. An empty raw unsets it.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = birthday
	return nil
}

// Birthday reports false when no birthday is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// DaysToNextBirthday returns nil when no birthday is set. The birth year is
// ignored: the day and month are placed in now's year, or the following year
// when that moment is not strictly after now. The result is the number of whole
// days left, fractions of a day being dropped.
func (r *Record) DaysToNextBirthday(now time.Time) (*int, error) {
	if r.birthday.IsZero() {
		return nil, nil
	}
	current := wallClock(now)
	next, err := r.birthdayIn(current.Year())
	if err != nil {
		return nil, err
	}
	if !current.Before(next) {
		if next, err = r.birthdayIn(current.Year() + 1); err != nil {
			return nil, err
		}
	}
	return lo.ToPtr(int(next.Sub(current) / oneDay)), nil
}

func (r *Record) birthdayIn(year int) (time.Time, error) {
	b := r.birthday
	if !isCalendarDate(year, int(b.Month()), b.Day()) {
		return time.Time{}, fmt.Errorf("%w: %02d/%02d in %d", errors.ErrBirthdayNotInYear, b.Day(), b.Month(), year)
	}
	return time.Date(year, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC), nil
}

// wallClock drops the location so day counts follow the calendar, not DST shifts.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
