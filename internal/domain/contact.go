package domain

import (
	"errors"
	"strings"
)

// Validation errors for Contact fields.
var (
	ErrEmptyFirstName   = errors.New("first_name cannot be empty")
	ErrFirstNameTooLong = errors.New("first_name must be at most 100 characters long")
	ErrLastNameTooLong  = errors.New("last_name must be at most 100 characters long")
	ErrEmailTooLong     = errors.New("email must be at most 100 characters long")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPhoneTooLong     = errors.New("phone must be at most 20 characters long")
)

// Contact is an address-book entry. UserID records the owning user and is
// immutable after creation; every read or mutation is scoped by it.
type Contact struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	UserID    int64  `json:"-"`
}

// NewContact creates a Contact owned by the given user.
func NewContact(userID int64, firstName, lastName, email, phone string) (*Contact, error) {
	contact := &Contact{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		UserID:    userID,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks the Contact's field constraints. Email format is only
// checked when the field is present, since it is optional.
func (c *Contact) Validate() error {
	if c.FirstName == "" {
		return ErrEmptyFirstName
	}
	if len(c.FirstName) > 100 {
		return ErrFirstNameTooLong
	}
	if len(c.LastName) > 100 {
		return ErrLastNameTooLong
	}
	if len(c.Email) > 100 {
		return ErrEmailTooLong
	}
	if c.Email != "" && !validEmailFormat(c.Email) {
		return ErrInvalidEmail
	}
	if len(c.Phone) > 20 {
		return ErrPhoneTooLong
	}
	return nil
}

// validEmailFormat performs a basic structural check: a local part, an @,
// and a domain containing an interior dot. Request DTOs apply the stricter
// validator/v10 "email" rule; this is the last line of defense for contacts
// constructed outside the HTTP layer.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
