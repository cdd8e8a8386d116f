package domain

import "errors"

// Validation errors for User fields.
var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrUsernameTooLong = errors.New("username must be at most 100 characters long")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name must be at most 100 characters long")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password must be at most 100 characters long")
)

// User represents a registered account. The session token is an opaque
// credential stored on the row itself: set on login, compared for exact
// equality by the auth middleware, and cleared (set to nil) on logout.
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	HashedPassword string  `json:"-"` // never expose the password digest
	Token          *string `json:"-"` // nil when the user is logged out
}

// NewUser creates a User with the given username and display name.
// The caller is responsible for hashing the password and setting
// HashedPassword before the user is persisted.
func NewUser(username, name string) (*User, error) {
	user := &User{
		Username: username,
		Name:     name,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's field constraints.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 100 {
		return ErrUsernameTooLong
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if len(u.Name) > 100 {
		return ErrNameTooLong
	}
	return nil
}
