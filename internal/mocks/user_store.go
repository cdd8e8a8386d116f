package mocks

import (
	"context"
	"database/sql"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	GetByTokenFn    func(ctx context.Context, token string) (*domain.User, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	UpdateTokenFn   func(ctx context.Context, id int64, token *string) error

	// Users indexed by username for the default implementations.
	Users  map[string]*domain.User
	NextID int64
}

// NewMockUserStore creates a mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[string]*domain.User),
		NextID: 1,
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.Username] = user
	return nil
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, ok := m.Users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByToken implements the UserStore interface.
func (m *MockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}

	for _, user := range m.Users {
		if user.Token != nil && *user.Token == token {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	existing, ok := m.Users[user.Username]
	if !ok {
		return store.ErrUserNotFound
	}
	existing.Name = user.Name
	existing.HashedPassword = user.HashedPassword
	return nil
}

// UpdateToken implements the UserStore interface.
func (m *MockUserStore) UpdateToken(ctx context.Context, id int64, token *string) error {
	if m.UpdateTokenFn != nil {
		return m.UpdateTokenFn(ctx, id, token)
	}

	for _, user := range m.Users {
		if user.ID == id {
			user.Token = token
			return nil
		}
	}
	return store.ErrUserNotFound
}

// WithTx implements the UserStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
