package domain

import "errors"

// validationErrors lists every field-constraint sentinel so the API
// boundary can classify them without enumerating each one itself.
var validationErrors = []error{
	ErrEmptyUsername, ErrUsernameTooLong,
	ErrEmptyName, ErrNameTooLong,
	ErrEmptyPassword, ErrPasswordTooLong,
	ErrEmptyFirstName, ErrFirstNameTooLong,
	ErrLastNameTooLong, ErrEmailTooLong, ErrInvalidEmail, ErrPhoneTooLong,
	ErrStreetTooLong, ErrCityTooLong, ErrProvinceTooLong,
	ErrEmptyCountry, ErrCountryTooLong,
	ErrEmptyPostalCode, ErrPostalCodeTooLong,
}

// IsValidationError reports whether err is one of the domain's field
// validation errors.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
