package errors

import "fmt"

var (
	ErrValidation          = fmt.Errorf("validation failed")
	ErrInvalidPhoneNumber  = fmt.Errorf("%w: phone number must contain only digits and be at least 10 characters long", ErrValidation)
	ErrInvalidBirthday     = fmt.Errorf("%w: birthday must be a valid date formatted as dd/mm/yyyy", ErrValidation)
	ErrEmptyName           = fmt.Errorf("%w: contact name cannot be empty", ErrValidation)
	ErrMalformedStoredLine = fmt.Errorf("malformed stored line")
	ErrContactNotFound     = fmt.Errorf("contact not found")
	ErrBirthdayNotInYear   = fmt.Errorf("birthday does not exist in target year")
	ErrUnknownBackend      = fmt.Errorf("unknown storage backend")
)
