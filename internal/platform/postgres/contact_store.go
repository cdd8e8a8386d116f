package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/platform/logger"
	"github.com/contactsapp/contacts-api/internal/store"
)

// ContactStore implements the store.ContactStore interface using a
// PostgreSQL database as the storage backend. Every query carries the
// owner's user_id in its WHERE clause, so rows owned by other users are
// invisible rather than forbidden.
type ContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewContactStore creates a new PostgreSQL implementation of
// store.ContactStore. If logger is nil, the default logger is used.
func NewContactStore(db store.DBTX, log *slog.Logger) *ContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ContactStore{
		db:     db,
		logger: log.With(slog.String("component", "contact_store")),
	}
}

// Ensure ContactStore implements store.ContactStore
var _ store.ContactStore = (*ContactStore)(nil)

// Create implements store.ContactStore.Create.
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", contact.UserID))
		return err
	}

	query := `
		INSERT INTO contacts (first_name, last_name, email, phone, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.UserID,
	).Scan(&contact.ID)
	if err != nil {
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.Int64("user_id", contact.UserID))
		return MapError(err)
	}

	log.Info("contact created",
		slog.Int64("contact_id", contact.ID),
		slog.Int64("user_id", contact.UserID))
	return nil
}

// GetByID implements store.ContactStore.GetByID.
func (s *ContactStore) GetByID(ctx context.Context, userID, id int64) (*domain.Contact, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, user_id
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`
	var contact domain.Contact
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&contact.ID, &contact.FirstName, &contact.LastName,
		&contact.Email, &contact.Phone, &contact.UserID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrContactNotFound
		}
		return nil, MapError(err)
	}
	return &contact, nil
}

// ExistsByID implements store.ContactStore.ExistsByID.
func (s *ContactStore) ExistsByID(ctx context.Context, userID, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM contacts WHERE id = $1 AND user_id = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id, userID).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Update implements store.ContactStore.Update.
func (s *ContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return err
	}

	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE id = $5 AND user_id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.ID, contact.UserID,
	)
	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrContactNotFound)
}

// Delete implements store.ContactStore.Delete.
func (s *ContactStore) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM contacts WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrContactNotFound)
}

// List implements store.ContactStore.List.
func (s *ContactStore) List(ctx context.Context, userID int64, filter store.ContactFilter) ([]domain.Contact, error) {
	where, args := buildContactFilter(userID, filter)

	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, email, phone, user_id
		FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Size, filter.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	contacts := make([]domain.Contact, 0, filter.Size)
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID, &contact.FirstName, &contact.LastName,
			&contact.Email, &contact.Phone, &contact.UserID,
		); err != nil {
			return nil, MapError(err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return contacts, nil
}

// Count implements store.ContactStore.Count.
func (s *ContactStore) Count(ctx context.Context, userID int64, filter store.ContactFilter) (int64, error) {
	where, args := buildContactFilter(userID, filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM contacts WHERE %s`, where)

	var total int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, MapError(err)
	}
	return total, nil
}

// WithTx implements store.ContactStore.WithTx.
func (s *ContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return &ContactStore{
		db:     tx,
		logger: s.logger,
	}
}

// buildContactFilter assembles the conjunctive WHERE clause shared by List
// and Count. The name predicate matches against first OR last name; all
// predicates use case-insensitive substring containment.
func buildContactFilter(userID int64, filter store.ContactFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", n, n))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.Phone != "" {
		args = append(args, "%"+filter.Phone+"%")
		conds = append(conds, fmt.Sprintf("phone ILIKE $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}
