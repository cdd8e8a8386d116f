package main

import (
	"database/sql"
	"log/slog"

	"github.com/contactsapp/contacts-api/internal/config"
	"github.com/contactsapp/contacts-api/internal/platform/postgres"
	"github.com/contactsapp/contacts-api/internal/service"
	"github.com/contactsapp/contacts-api/internal/service/auth"
	"github.com/contactsapp/contacts-api/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	contactStore store.ContactStore
	addressStore store.AddressStore

	userService    service.UserService
	contactService service.ContactService
	addressService service.AddressService
}

// newApplication wires stores and services on top of the database handle.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) *application {
	userStore := postgres.NewUserStore(db, log)
	contactStore := postgres.NewContactStore(db, log)
	addressStore := postgres.NewAddressStore(db, log)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewUUIDTokenGenerator()

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		userStore:    userStore,
		contactStore: contactStore,
		addressStore: addressStore,

		userService:    service.NewUserService(userStore, hasher, hasher, tokens, db, log),
		contactService: service.NewContactService(contactStore, addressStore, db, log),
		addressService: service.NewAddressService(contactStore, addressStore, db, log),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
