package domain

import (
	"address-book/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const phoneRule = "required,number,min=10"

// PhoneNumber is a validated phone number. The zero value is not a valid number;
// build one with NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber accepts a non-empty, all-digit string of at least 10 characters.
// No upper bound and no country-code normalization.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if err := validate.Var(raw, phoneRule); err != nil {
		return PhoneNumber{}, fmt.Errorf("%w: %q", errors.ErrInvalidPhoneNumber, raw)
	}
	return PhoneNumber{value: raw}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}

func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return p.value == other.value
}
