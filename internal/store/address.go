package store

import (
	"context"
	"database/sql"

	"github.com/contactsapp/contacts-api/internal/domain"
)

// AddressStore defines the interface for address data persistence. All
// operations are scoped by the parent contact's ID; verifying that the
// contact itself belongs to the caller is the service layer's job.
type AddressStore interface {
	// Create saves a new address and populates address.ID.
	Create(ctx context.Context, address *domain.Address) error

	// GetByID retrieves an address by id, scoped to the parent contact.
	// Returns ErrAddressNotFound if no such address exists under contactID.
	GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error)

	// Update overwrites all mutable address fields, scoped to the parent
	// contact. Returns ErrAddressNotFound if no such address exists.
	Update(ctx context.Context, address *domain.Address) error

	// Delete removes an address, scoped to the parent contact.
	// Returns ErrAddressNotFound if no such address exists.
	Delete(ctx context.Context, contactID, id int64) error

	// ListByContact returns all addresses under the contact, ordered by id.
	ListByContact(ctx context.Context, contactID int64) ([]domain.Address, error)

	// DeleteByContact removes every address under the contact. Used when
	// a contact is deleted, so the cascade is explicit even on stores
	// without referential delete semantics.
	DeleteByContact(ctx context.Context, contactID int64) error

	// WithTx returns an AddressStore bound to the given transaction.
	WithTx(tx *sql.Tx) AddressStore
}
