package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactsapp/contacts-api/internal/api"
	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/mocks"
	"github.com/contactsapp/contacts-api/internal/service/auth"
	"github.com/contactsapp/contacts-api/internal/store"
)

func userRouter(svc *mocks.MockUserService, user *domain.User) http.Handler {
	h := api.NewUserHandler(svc)

	r := chi.NewRouter()
	r.Post("/api/users", h.Register)
	r.Post("/api/users/login", h.Login)

	r.Group(func(r chi.Router) {
		if user != nil {
			r.Use(withUser(user))
		}
		r.Get("/api/users/current", h.Current)
		r.Patch("/api/users/current", h.Update)
		r.Delete("/api/users/logout", h.Logout)
	})

	return r
}

func TestUserHandlerRegister(t *testing.T) {
	svc := &mocks.MockUserService{
		RegisterFn: func(ctx context.Context, username, password, name string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username, Name: name, HashedPassword: "digest"}, nil
		},
	}

	rec := doRequest(t, userRouter(svc, nil), http.MethodPost, "/api/users", map[string]string{
		"username": "john",
		"password": "rahasia",
		"name":     "John Doe",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john", data["username"])
	assert.Equal(t, "John Doe", data["name"])

	// The digest must never serialize.
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandlerRegisterValidation(t *testing.T) {
	svc := &mocks.MockUserService{
		RegisterFn: func(ctx context.Context, username, password, name string) (*domain.User, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}

	rec := doRequest(t, userRouter(svc, nil), http.MethodPost, "/api/users", map[string]string{
		"username": "",
		"password": "",
		"name":     "John Doe",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	msgs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs, "username is required")
	assert.Contains(t, msgs, "password is required")
}

func TestUserHandlerRegisterMalformedBody(t *testing.T) {
	svc := &mocks.MockUserService{}

	rec := doRequest(t, userRouter(svc, nil), http.MethodPost, "/api/users", "not an object")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid request body", body["errors"])
}

func TestUserHandlerRegisterDuplicate(t *testing.T) {
	svc := &mocks.MockUserService{
		RegisterFn: func(ctx context.Context, username, password, name string) (*domain.User, error) {
			return nil, store.ErrUsernameExists
		},
	}

	rec := doRequest(t, userRouter(svc, nil), http.MethodPost, "/api/users", map[string]string{
		"username": "john",
		"password": "rahasia",
		"name":     "John Doe",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Username already registered", body["errors"])
}

func TestUserHandlerLogin(t *testing.T) {
	svc := &mocks.MockUserService{
		LoginFn: func(ctx context.Context, username, password string) (string, error) {
			return "session-token", nil
		},
	}

	rec := doRequest(t, userRouter(svc, nil), http.MethodPost, "/api/users/login", map[string]string{
		"username": "john",
		"password": "rahasia",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "session-token", data["token"])
}

func TestUserHandlerLoginWrongCredentials(t *testing.T) {
	svc := &mocks.MockUserService{
		LoginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", auth.ErrInvalidCredentials
		},
	}

	rec := doRequest(t, userRouter(svc, nil), http.MethodPost, "/api/users/login", map[string]string{
		"username": "john",
		"password": "salah",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Username or password wrong", body["errors"])
}

func TestUserHandlerCurrent(t *testing.T) {
	rec := doRequest(t, userRouter(&mocks.MockUserService{}, testUser()), http.MethodGet, "/api/users/current", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john", data["username"])
	assert.Equal(t, "John Doe", data["name"])
}

func TestUserHandlerCurrentWithoutUser(t *testing.T) {
	rec := doRequest(t, userRouter(&mocks.MockUserService{}, nil), http.MethodGet, "/api/users/current", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Unauthorized", body["errors"])
}

func TestUserHandlerUpdate(t *testing.T) {
	svc := &mocks.MockUserService{
		UpdateFn: func(ctx context.Context, user *domain.User, name, password *string) (*domain.User, error) {
			updated := *user
			if name != nil {
				updated.Name = *name
			}
			return &updated, nil
		},
	}

	rec := doRequest(t, userRouter(svc, testUser()), http.MethodPatch, "/api/users/current", map[string]string{
		"name": "John Renamed",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John Renamed", data["name"])
}

func TestUserHandlerUpdateOmittedFieldsStayNil(t *testing.T) {
	var gotName, gotPassword *string
	svc := &mocks.MockUserService{
		UpdateFn: func(ctx context.Context, user *domain.User, name, password *string) (*domain.User, error) {
			gotName, gotPassword = name, password
			return user, nil
		},
	}

	rec := doRequest(t, userRouter(svc, testUser()), http.MethodPatch, "/api/users/current", map[string]string{
		"password": "rahasialagi",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotName)
	require.NotNil(t, gotPassword)
	assert.Equal(t, "rahasialagi", *gotPassword)
}

func TestUserHandlerLogout(t *testing.T) {
	var loggedOut *domain.User
	svc := &mocks.MockUserService{
		LogoutFn: func(ctx context.Context, user *domain.User) error {
			loggedOut = user
			return nil
		},
	}

	rec := doRequest(t, userRouter(svc, testUser()), http.MethodDelete, "/api/users/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "OK", body["data"])
	require.NotNil(t, loggedOut)
	assert.Equal(t, int64(7), loggedOut.ID)
}

func TestUserHandlerLogoutFailure(t *testing.T) {
	svc := &mocks.MockUserService{
		LogoutFn: func(ctx context.Context, user *domain.User) error {
			return errors.New("connection refused")
		},
	}

	rec := doRequest(t, userRouter(svc, testUser()), http.MethodDelete, "/api/users/logout", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "connection refused", body["errors"])
}
