package mocks

import (
	"context"
	"database/sql"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing.
type MockContactStore struct {
	CreateFn     func(ctx context.Context, contact *domain.Contact) error
	GetByIDFn    func(ctx context.Context, userID, id int64) (*domain.Contact, error)
	ExistsByIDFn func(ctx context.Context, userID, id int64) (bool, error)
	UpdateFn     func(ctx context.Context, contact *domain.Contact) error
	DeleteFn     func(ctx context.Context, userID, id int64) error
	ListFn       func(ctx context.Context, userID int64, filter store.ContactFilter) ([]domain.Contact, error)
	CountFn      func(ctx context.Context, userID int64, filter store.ContactFilter) (int64, error)

	// Contacts indexed by id for the default implementations.
	Contacts map[int64]*domain.Contact
	NextID   int64
}

// NewMockContactStore creates a mock store with initialized defaults.
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[int64]*domain.Contact),
		NextID:   1,
	}
}

var _ store.ContactStore = (*MockContactStore)(nil)

// Create implements the ContactStore interface.
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	contact.ID = m.NextID
	m.NextID++
	stored := *contact
	m.Contacts[contact.ID] = &stored
	return nil
}

// GetByID implements the ContactStore interface.
func (m *MockContactStore) GetByID(ctx context.Context, userID, id int64) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, id)
	}

	contact, ok := m.Contacts[id]
	if !ok || contact.UserID != userID {
		return nil, store.ErrContactNotFound
	}
	return contact, nil
}

// ExistsByID implements the ContactStore interface.
func (m *MockContactStore) ExistsByID(ctx context.Context, userID, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, userID, id)
	}

	contact, ok := m.Contacts[id]
	return ok && contact.UserID == userID, nil
}

// Update implements the ContactStore interface.
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	existing, ok := m.Contacts[contact.ID]
	if !ok || existing.UserID != contact.UserID {
		return store.ErrContactNotFound
	}
	*existing = *contact
	return nil
}

// Delete implements the ContactStore interface.
func (m *MockContactStore) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	contact, ok := m.Contacts[id]
	if !ok || contact.UserID != userID {
		return store.ErrContactNotFound
	}
	delete(m.Contacts, id)
	return nil
}

// List implements the ContactStore interface.
func (m *MockContactStore) List(ctx context.Context, userID int64, filter store.ContactFilter) ([]domain.Contact, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}
	return nil, nil
}

// Count implements the ContactStore interface.
func (m *MockContactStore) Count(ctx context.Context, userID int64, filter store.ContactFilter) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, userID, filter)
	}
	return 0, nil
}

// WithTx implements the ContactStore interface.
func (m *MockContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return m
}
