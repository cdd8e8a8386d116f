package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/store"
)

// Search pagination defaults.
const (
	DefaultPage = 1
	DefaultSize = 10
)

// ContactPage is one page of search results together with the paging
// block computed from the filtered count.
type ContactPage struct {
	Contacts  []domain.Contact
	Page      int
	TotalPage int64
	TotalItem int64
}

// ContactService provides ownership-scoped CRUD and paginated search over
// a user's contacts.
type ContactService interface {
	// Create persists a new contact owned by userID.
	Create(ctx context.Context, userID int64, firstName, lastName, email, phone string) (*domain.Contact, error)

	// Get retrieves one of the user's contacts.
	// Returns store.ErrContactNotFound if absent or owned by someone else.
	Get(ctx context.Context, userID, contactID int64) (*domain.Contact, error)

	// Update overwrites all contact fields after re-checking ownership.
	// Returns store.ErrContactNotFound if absent or owned by someone else.
	Update(ctx context.Context, userID, contactID int64, firstName, lastName, email, phone string) (*domain.Contact, error)

	// Delete removes the contact and all of its addresses.
	// Returns store.ErrContactNotFound if absent or owned by someone else.
	Delete(ctx context.Context, userID, contactID int64) error

	// Search returns one page of the user's contacts matching the filter.
	// An empty filter matches everything the user owns.
	Search(ctx context.Context, userID int64, filter store.ContactFilter) (*ContactPage, error)
}

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	contactStore store.ContactStore
	addressStore store.AddressStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(
	contactStore store.ContactStore,
	addressStore store.AddressStore,
	db *sql.DB,
	log *slog.Logger,
) *ContactServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &ContactServiceImpl{
		contactStore: contactStore,
		addressStore: addressStore,
		db:           db,
		logger:       log.With("component", "contact_service"),
	}
}

// Create implements ContactService.Create.
func (s *ContactServiceImpl) Create(ctx context.Context, userID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
	contact, err := domain.NewContact(userID, firstName, lastName, email, phone)
	if err != nil {
		return nil, err
	}

	if err := s.contactStore.Create(ctx, contact); err != nil {
		s.logger.Error("failed to create contact", "error", err, "user_id", userID)
		return nil, err
	}

	return contact, nil
}

// Get implements ContactService.Get.
func (s *ContactServiceImpl) Get(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	return s.contactStore.GetByID(ctx, userID, contactID)
}

// Update implements ContactService.Update. The existence check and the
// overwrite run inside one transaction.
func (s *ContactServiceImpl) Update(ctx context.Context, userID, contactID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
	contact, err := domain.NewContact(userID, firstName, lastName, email, phone)
	if err != nil {
		return nil, err
	}
	contact.ID = contactID

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txContacts := s.contactStore.WithTx(tx)

		exists, err := txContacts.ExistsByID(ctx, userID, contactID)
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrContactNotFound
		}

		return txContacts.Update(ctx, contact)
	})
	if err != nil {
		return nil, err
	}

	return contact, nil
}

// Delete implements ContactService.Delete. Addresses are removed first so
// the cascade is explicit rather than left to the schema.
func (s *ContactServiceImpl) Delete(ctx context.Context, userID, contactID int64) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txContacts := s.contactStore.WithTx(tx)

		exists, err := txContacts.ExistsByID(ctx, userID, contactID)
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrContactNotFound
		}

		if err := s.addressStore.WithTx(tx).DeleteByContact(ctx, contactID); err != nil {
			return err
		}

		return txContacts.Delete(ctx, userID, contactID)
	})
}

// Search implements ContactService.Search. total_page is the ceiling of
// the filtered count divided by the page size.
func (s *ContactServiceImpl) Search(ctx context.Context, userID int64, filter store.ContactFilter) (*ContactPage, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Size < 1 {
		filter.Size = DefaultSize
	}

	contacts, err := s.contactStore.List(ctx, userID, filter)
	if err != nil {
		s.logger.Error("failed to list contacts", "error", err, "user_id", userID)
		return nil, err
	}

	total, err := s.contactStore.Count(ctx, userID, filter)
	if err != nil {
		s.logger.Error("failed to count contacts", "error", err, "user_id", userID)
		return nil, err
	}

	size := int64(filter.Size)
	return &ContactPage{
		Contacts:  contacts,
		Page:      filter.Page,
		TotalPage: (total + size - 1) / size,
		TotalItem: total,
	}, nil
}
