package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/service/auth"
	"github.com/contactsapp/contacts-api/internal/store"
)

// UserService provides account operations: registration, credential login,
// partial profile updates and logout.
type UserService interface {
	// Register creates a new user with a hashed password.
	// Returns store.ErrUsernameExists if the username is taken.
	Register(ctx context.Context, username, password, name string) (*domain.User, error)

	// Login verifies the credentials and, on success, persists and returns
	// a fresh opaque session token. Unknown username and wrong password
	// both return auth.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)

	// Update applies a partial update to the already-authenticated user.
	// A nil field is left untouched; a non-nil password is re-hashed
	// before storage. Returns the updated user.
	Update(ctx context.Context, user *domain.User, name, password *string) (*domain.User, error)

	// Logout clears the user's session token. The old token fails
	// authentication from then on.
	Logout(ctx context.Context, user *domain.User) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	tokens    auth.TokenGenerator
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.TokenGenerator,
	db *sql.DB,
	log *slog.Logger,
) *UserServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		tokens:    tokens,
		db:        db,
		logger:    log.With("component", "user_service"),
	}
}

// Register implements UserService.Register.
func (s *UserServiceImpl) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	user, err := domain.NewUser(username, name)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = digest

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username", "username", username)
		} else {
			s.logger.Error("failed to create user", "error", err, "username", username)
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", username)
	return user, nil
}

// Login implements UserService.Login.
func (s *UserServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err, "username", username)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	token := s.tokens.Generate()
	if err := s.userStore.UpdateToken(ctx, user.ID, &token); err != nil {
		s.logger.Error("failed to persist session token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to persist session token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Update implements UserService.Update. The check and mutation run inside
// a transaction so a concurrent delete cannot interleave.
func (s *UserServiceImpl) Update(ctx context.Context, user *domain.User, name, password *string) (*domain.User, error) {
	updated := *user
	if name != nil {
		updated.Name = *name
	}
	if password != nil {
		digest, err := s.hasher.Hash(*password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updated.HashedPassword = digest
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Update(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", updated.ID)
	return &updated, nil
}

// Logout implements UserService.Logout.
func (s *UserServiceImpl) Logout(ctx context.Context, user *domain.User) error {
	if err := s.userStore.UpdateToken(ctx, user.ID, nil); err != nil {
		s.logger.Error("failed to clear session token", "error", err, "user_id", user.ID)
		return err
	}

	s.logger.Info("user logged out", "user_id", user.ID)
	return nil
}
