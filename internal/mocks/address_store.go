package mocks

import (
	"context"
	"database/sql"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing.
type MockAddressStore struct {
	CreateFn          func(ctx context.Context, address *domain.Address) error
	GetByIDFn         func(ctx context.Context, contactID, id int64) (*domain.Address, error)
	UpdateFn          func(ctx context.Context, address *domain.Address) error
	DeleteFn          func(ctx context.Context, contactID, id int64) error
	ListByContactFn   func(ctx context.Context, contactID int64) ([]domain.Address, error)
	DeleteByContactFn func(ctx context.Context, contactID int64) error

	// Addresses indexed by id for the default implementations.
	Addresses map[int64]*domain.Address
	NextID    int64
}

// NewMockAddressStore creates a mock store with initialized defaults.
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{
		Addresses: make(map[int64]*domain.Address),
		NextID:    1,
	}
}

var _ store.AddressStore = (*MockAddressStore)(nil)

// Create implements the AddressStore interface.
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}

	address.ID = m.NextID
	m.NextID++
	stored := *address
	m.Addresses[address.ID] = &stored
	return nil
}

// GetByID implements the AddressStore interface.
func (m *MockAddressStore) GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, contactID, id)
	}

	address, ok := m.Addresses[id]
	if !ok || address.ContactID != contactID {
		return nil, store.ErrAddressNotFound
	}
	return address, nil
}

// Update implements the AddressStore interface.
func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}

	existing, ok := m.Addresses[address.ID]
	if !ok || existing.ContactID != address.ContactID {
		return store.ErrAddressNotFound
	}
	*existing = *address
	return nil
}

// Delete implements the AddressStore interface.
func (m *MockAddressStore) Delete(ctx context.Context, contactID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, contactID, id)
	}

	address, ok := m.Addresses[id]
	if !ok || address.ContactID != contactID {
		return store.ErrAddressNotFound
	}
	delete(m.Addresses, id)
	return nil
}

// ListByContact implements the AddressStore interface.
func (m *MockAddressStore) ListByContact(ctx context.Context, contactID int64) ([]domain.Address, error) {
	if m.ListByContactFn != nil {
		return m.ListByContactFn(ctx, contactID)
	}

	out := make([]domain.Address, 0)
	for _, address := range m.Addresses {
		if address.ContactID == contactID {
			out = append(out, *address)
		}
	}
	return out, nil
}

// DeleteByContact implements the AddressStore interface.
func (m *MockAddressStore) DeleteByContact(ctx context.Context, contactID int64) error {
	if m.DeleteByContactFn != nil {
		return m.DeleteByContactFn(ctx, contactID)
	}

	for id, address := range m.Addresses {
		if address.ContactID == contactID {
			delete(m.Addresses, id)
		}
	}
	return nil
}

// WithTx implements the AddressStore interface.
func (m *MockAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return m
}
