package store

import (
	"context"
	"database/sql"

	"github.com/contactsapp/contacts-api/internal/domain"
)

// ContactFilter carries the optional search predicates and pagination
// window for listing a user's contacts. All provided predicates are ANDed
// together; Name matches against first or last name. Matching is
// case-insensitive substring containment.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
	Page  int // 1-indexed
	Size  int
}

// Offset returns the row offset for the filter's pagination window.
func (f ContactFilter) Offset() int {
	return (f.Page - 1) * f.Size
}

// ContactStore defines the interface for contact data persistence. Every
// read and mutation is scoped by the owning user's ID; a contact belonging
// to another user behaves exactly like a missing one.
type ContactStore interface {
	// Create saves a new contact and populates contact.ID.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByID retrieves a contact by id, scoped to the owner.
	// Returns ErrContactNotFound if no such contact is owned by userID.
	GetByID(ctx context.Context, userID, id int64) (*domain.Contact, error)

	// ExistsByID reports whether the contact exists and is owned by userID.
	ExistsByID(ctx context.Context, userID, id int64) (bool, error)

	// Update overwrites all mutable contact fields, scoped to the owner.
	// Returns ErrContactNotFound if no such contact is owned by the
	// contact's UserID.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes a contact, scoped to the owner.
	// Returns ErrContactNotFound if no such contact is owned by userID.
	Delete(ctx context.Context, userID, id int64) error

	// List returns one page of the owner's contacts matching the filter,
	// ordered by id.
	List(ctx context.Context, userID int64, filter ContactFilter) ([]domain.Contact, error)

	// Count returns the total number of the owner's contacts matching the
	// filter, ignoring pagination.
	Count(ctx context.Context, userID int64, filter ContactFilter) (int64, error)

	// WithTx returns a ContactStore bound to the given transaction.
	WithTx(tx *sql.Tx) ContactStore
}
