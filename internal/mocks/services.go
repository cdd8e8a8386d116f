package mocks

import (
	"context"

	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/service"
	"github.com/contactsapp/contacts-api/internal/store"
)

// MockUserService implements service.UserService for handler tests.
type MockUserService struct {
	RegisterFn func(ctx context.Context, username, password, name string) (*domain.User, error)
	LoginFn    func(ctx context.Context, username, password string) (string, error)
	UpdateFn   func(ctx context.Context, user *domain.User, name, password *string) (*domain.User, error)
	LogoutFn   func(ctx context.Context, user *domain.User) error
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	return m.RegisterFn(ctx, username, password, name)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (string, error) {
	return m.LoginFn(ctx, username, password)
}

func (m *MockUserService) Update(ctx context.Context, user *domain.User, name, password *string) (*domain.User, error) {
	return m.UpdateFn(ctx, user, name, password)
}

func (m *MockUserService) Logout(ctx context.Context, user *domain.User) error {
	return m.LogoutFn(ctx, user)
}

// MockContactService implements service.ContactService for handler tests.
type MockContactService struct {
	CreateFn func(ctx context.Context, userID int64, firstName, lastName, email, phone string) (*domain.Contact, error)
	GetFn    func(ctx context.Context, userID, contactID int64) (*domain.Contact, error)
	UpdateFn func(ctx context.Context, userID, contactID int64, firstName, lastName, email, phone string) (*domain.Contact, error)
	DeleteFn func(ctx context.Context, userID, contactID int64) error
	SearchFn func(ctx context.Context, userID int64, filter store.ContactFilter) (*service.ContactPage, error)
}

var _ service.ContactService = (*MockContactService)(nil)

func (m *MockContactService) Create(ctx context.Context, userID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
	return m.CreateFn(ctx, userID, firstName, lastName, email, phone)
}

func (m *MockContactService) Get(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	return m.GetFn(ctx, userID, contactID)
}

func (m *MockContactService) Update(ctx context.Context, userID, contactID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
	return m.UpdateFn(ctx, userID, contactID, firstName, lastName, email, phone)
}

func (m *MockContactService) Delete(ctx context.Context, userID, contactID int64) error {
	return m.DeleteFn(ctx, userID, contactID)
}

func (m *MockContactService) Search(ctx context.Context, userID int64, filter store.ContactFilter) (*service.ContactPage, error) {
	return m.SearchFn(ctx, userID, filter)
}

// MockAddressService implements service.AddressService for handler tests.
type MockAddressService struct {
	CreateFn func(ctx context.Context, userID, contactID int64, street, city, province, country, postalCode string) (*domain.Address, error)
	GetFn    func(ctx context.Context, userID, contactID, addressID int64) (*domain.Address, error)
	UpdateFn func(ctx context.Context, userID, contactID, addressID int64, street, city, province, country, postalCode string) (*domain.Address, error)
	DeleteFn func(ctx context.Context, userID, contactID, addressID int64) error
	ListFn   func(ctx context.Context, userID, contactID int64) ([]domain.Address, error)
}

var _ service.AddressService = (*MockAddressService)(nil)

func (m *MockAddressService) Create(ctx context.Context, userID, contactID int64, street, city, province, country, postalCode string) (*domain.Address, error) {
	return m.CreateFn(ctx, userID, contactID, street, city, province, country, postalCode)
}

func (m *MockAddressService) Get(ctx context.Context, userID, contactID, addressID int64) (*domain.Address, error) {
	return m.GetFn(ctx, userID, contactID, addressID)
}

func (m *MockAddressService) Update(ctx context.Context, userID, contactID, addressID int64, street, city, province, country, postalCode string) (*domain.Address, error) {
	return m.UpdateFn(ctx, userID, contactID, addressID, street, city, province, country, postalCode)
}

func (m *MockAddressService) Delete(ctx context.Context, userID, contactID, addressID int64) error {
	return m.DeleteFn(ctx, userID, contactID, addressID)
}

func (m *MockAddressService) List(ctx context.Context, userID, contactID int64) ([]domain.Address, error) {
	return m.ListFn(ctx, userID, contactID)
}
