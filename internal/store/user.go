package store

import (
	"context"
	"database/sql"

	"github.com/contactsapp/contacts-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The user's HashedPassword must already be
	// set. Populates user.ID on success.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user whose session token equals the given
	// value. Logged-out users (token NULL) never match.
	// Returns ErrUserNotFound if no user holds the token.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// Update overwrites the user's name and password digest.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// UpdateToken sets or clears the user's session token. A nil token
	// logs the user out.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateToken(ctx context.Context, id int64, token *string) error

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
