package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/store"
)

// AddressService provides CRUD over the addresses nested under a contact.
// Every operation first re-verifies the owner chain: the contact must
// belong to the calling user, otherwise store.ErrContactNotFound is
// returned before the address is even looked at.
type AddressService interface {
	// Create persists a new address under one of the user's contacts.
	Create(ctx context.Context, userID, contactID int64, street, city, province, country, postalCode string) (*domain.Address, error)

	// Get retrieves an address through the owner chain.
	Get(ctx context.Context, userID, contactID, addressID int64) (*domain.Address, error)

	// Update overwrites all address fields after re-checking the chain.
	Update(ctx context.Context, userID, contactID, addressID int64, street, city, province, country, postalCode string) (*domain.Address, error)

	// Delete removes an address through the owner chain.
	Delete(ctx context.Context, userID, contactID, addressID int64) error

	// List returns all addresses under one of the user's contacts,
	// ordered by id. No pagination.
	List(ctx context.Context, userID, contactID int64) ([]domain.Address, error)
}

// AddressServiceImpl implements the AddressService interface.
type AddressServiceImpl struct {
	contactStore store.ContactStore
	addressStore store.AddressStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewAddressService creates a new AddressService.
func NewAddressService(
	contactStore store.ContactStore,
	addressStore store.AddressStore,
	db *sql.DB,
	log *slog.Logger,
) *AddressServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &AddressServiceImpl{
		contactStore: contactStore,
		addressStore: addressStore,
		db:           db,
		logger:       log.With("component", "address_service"),
	}
}

// checkContact verifies that the contact exists and belongs to the user.
func (s *AddressServiceImpl) checkContact(ctx context.Context, contacts store.ContactStore, userID, contactID int64) error {
	exists, err := contacts.ExistsByID(ctx, userID, contactID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrContactNotFound
	}
	return nil
}

// Create implements AddressService.Create.
func (s *AddressServiceImpl) Create(ctx context.Context, userID, contactID int64, street, city, province, country, postalCode string) (*domain.Address, error) {
	address, err := domain.NewAddress(contactID, street, city, province, country, postalCode)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.checkContact(ctx, s.contactStore.WithTx(tx), userID, contactID); err != nil {
			return err
		}
		return s.addressStore.WithTx(tx).Create(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// Get implements AddressService.Get.
func (s *AddressServiceImpl) Get(ctx context.Context, userID, contactID, addressID int64) (*domain.Address, error) {
	if err := s.checkContact(ctx, s.contactStore, userID, contactID); err != nil {
		return nil, err
	}
	return s.addressStore.GetByID(ctx, contactID, addressID)
}

// Update implements AddressService.Update.
func (s *AddressServiceImpl) Update(ctx context.Context, userID, contactID, addressID int64, street, city, province, country, postalCode string) (*domain.Address, error) {
	address, err := domain.NewAddress(contactID, street, city, province, country, postalCode)
	if err != nil {
		return nil, err
	}
	address.ID = addressID

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.checkContact(ctx, s.contactStore.WithTx(tx), userID, contactID); err != nil {
			return err
		}
		return s.addressStore.WithTx(tx).Update(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// Delete implements AddressService.Delete.
func (s *AddressServiceImpl) Delete(ctx context.Context, userID, contactID, addressID int64) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.checkContact(ctx, s.contactStore.WithTx(tx), userID, contactID); err != nil {
			return err
		}
		return s.addressStore.WithTx(tx).Delete(ctx, contactID, addressID)
	})
}

// List implements AddressService.List.
func (s *AddressServiceImpl) List(ctx context.Context, userID, contactID int64) ([]domain.Address, error) {
	if err := s.checkContact(ctx, s.contactStore, userID, contactID); err != nil {
		return nil, err
	}
	return s.addressStore.ListByContact(ctx, contactID)
}
