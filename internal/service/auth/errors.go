// Package auth provides the credential primitives used by the user
// service and the auth middleware: bcrypt password hashing/verification
// and opaque session token generation.
package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when a login attempt fails, either
	// because the username is unknown or the password does not match. The
	// two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when a request carries no token or a
	// token that resolves to no user.
	ErrUnauthenticated = errors.New("unauthenticated")
)
