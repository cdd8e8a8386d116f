package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/platform/logger"
	"github.com/contactsapp/contacts-api/internal/store"
)

// AddressStore implements the store.AddressStore interface using a
// PostgreSQL database as the storage backend. Queries are scoped by the
// parent contact's id; the service layer verifies that the contact itself
// belongs to the caller before any address operation.
type AddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAddressStore creates a new PostgreSQL implementation of
// store.AddressStore. If logger is nil, the default logger is used.
func NewAddressStore(db store.DBTX, log *slog.Logger) *AddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AddressStore{
		db:     db,
		logger: log.With(slog.String("component", "address_store")),
	}
}

// Ensure AddressStore implements store.AddressStore
var _ store.AddressStore = (*AddressStore)(nil)

// Create implements store.AddressStore.Create.
func (s *AddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", address.ContactID))
		return err
	}

	query := `
		INSERT INTO addresses (street, city, province, country, postal_code, contact_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		address.Street, address.City, address.Province,
		address.Country, address.PostalCode, address.ContactID,
	).Scan(&address.ID)
	if err != nil {
		log.Error("failed to create address",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", address.ContactID))
		return MapError(err)
	}

	log.Info("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("contact_id", address.ContactID))
	return nil
}

// GetByID implements store.AddressStore.GetByID.
func (s *AddressStore) GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	query := `
		SELECT id, street, city, province, country, postal_code, contact_id
		FROM addresses
		WHERE id = $1 AND contact_id = $2
	`
	var address domain.Address
	err := s.db.QueryRowContext(ctx, query, id, contactID).Scan(
		&address.ID, &address.Street, &address.City, &address.Province,
		&address.Country, &address.PostalCode, &address.ContactID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrAddressNotFound
		}
		return nil, MapError(err)
	}
	return &address, nil
}

// Update implements store.AddressStore.Update.
func (s *AddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}

	query := `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
		WHERE id = $6 AND contact_id = $7
	`
	result, err := s.db.ExecContext(ctx, query,
		address.Street, address.City, address.Province,
		address.Country, address.PostalCode,
		address.ID, address.ContactID,
	)
	if err != nil {
		log.Error("failed to update address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrAddressNotFound)
}

// Delete implements store.AddressStore.Delete.
func (s *AddressStore) Delete(ctx context.Context, contactID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM addresses WHERE id = $1 AND contact_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, contactID)
	if err != nil {
		log.Error("failed to delete address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrAddressNotFound)
}

// ListByContact implements store.AddressStore.ListByContact.
func (s *AddressStore) ListByContact(ctx context.Context, contactID int64) ([]domain.Address, error) {
	query := `
		SELECT id, street, city, province, country, postal_code, contact_id
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	addresses := make([]domain.Address, 0)
	for rows.Next() {
		var address domain.Address
		if err := rows.Scan(
			&address.ID, &address.Street, &address.City, &address.Province,
			&address.Country, &address.PostalCode, &address.ContactID,
		); err != nil {
			return nil, MapError(err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return addresses, nil
}

// DeleteByContact implements store.AddressStore.DeleteByContact. Deleting
// zero rows is fine here: a contact without addresses is not an error.
func (s *AddressStore) DeleteByContact(ctx context.Context, contactID int64) error {
	query := `DELETE FROM addresses WHERE contact_id = $1`

	if _, err := s.db.ExecContext(ctx, query, contactID); err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.AddressStore.WithTx.
func (s *AddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return &AddressStore{
		db:     tx,
		logger: s.logger,
	}
}
