package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactsapp/contacts-api/internal/api"
	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/mocks"
	"github.com/contactsapp/contacts-api/internal/service"
	"github.com/contactsapp/contacts-api/internal/store"
)

func contactRouter(svc *mocks.MockContactService, user *domain.User) http.Handler {
	h := api.NewContactHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		if user != nil {
			r.Use(withUser(user))
		}
		r.Post("/api/contacts", h.Create)
		r.Get("/api/contacts", h.Search)
		r.Get("/api/contacts/{contactId}", h.Get)
		r.Put("/api/contacts/{contactId}", h.Update)
		r.Delete("/api/contacts/{contactId}", h.Delete)
	})

	return r
}

func TestContactHandlerCreate(t *testing.T) {
	svc := &mocks.MockContactService{
		CreateFn: func(ctx context.Context, userID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
			require.Equal(t, int64(7), userID)
			return &domain.Contact{
				ID: 42, FirstName: firstName, LastName: lastName,
				Email: email, Phone: phone, UserID: userID,
			}, nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodPost, "/api/contacts", map[string]string{
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "john@example.com",
		"phone":      "08123456789",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), data["id"])
	assert.Equal(t, "John", data["first_name"])

	// Owner id is internal and never serialized.
	assert.NotContains(t, data, "user_id")
}

func TestContactHandlerCreateValidation(t *testing.T) {
	svc := &mocks.MockContactService{
		CreateFn: func(ctx context.Context, userID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodPost, "/api/contacts", map[string]string{
		"first_name": "",
		"email":      "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	msgs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Contains(t, msgs, "first_name is required")
	assert.Contains(t, msgs, "email must be a valid email address")
}

func TestContactHandlerCreateUnauthenticated(t *testing.T) {
	rec := doRequest(t, contactRouter(&mocks.MockContactService{}, nil), http.MethodPost, "/api/contacts", map[string]string{
		"first_name": "John",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Unauthorized", body["errors"])
}

func TestContactHandlerGet(t *testing.T) {
	svc := &mocks.MockContactService{
		GetFn: func(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
			require.Equal(t, int64(42), contactID)
			return &domain.Contact{ID: contactID, FirstName: "John", UserID: userID}, nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodGet, "/api/contacts/42", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), data["id"])
}

func TestContactHandlerGetNotFound(t *testing.T) {
	svc := &mocks.MockContactService{
		GetFn: func(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
			return nil, store.ErrContactNotFound
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodGet, "/api/contacts/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Contact is not found", body["errors"])
}

func TestContactHandlerGetNonNumericID(t *testing.T) {
	svc := &mocks.MockContactService{
		GetFn: func(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
			t.Fatal("service must not be called for an unparseable id")
			return nil, nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodGet, "/api/contacts/abc", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Contact is not found", body["errors"])
}

func TestContactHandlerUpdate(t *testing.T) {
	svc := &mocks.MockContactService{
		UpdateFn: func(ctx context.Context, userID, contactID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
			return &domain.Contact{
				ID: contactID, FirstName: firstName, LastName: lastName,
				Email: email, Phone: phone, UserID: userID,
			}, nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodPut, "/api/contacts/42", map[string]string{
		"first_name": "Johnny",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Johnny", data["first_name"])
}

func TestContactHandlerUpdateNotOwned(t *testing.T) {
	svc := &mocks.MockContactService{
		UpdateFn: func(ctx context.Context, userID, contactID int64, firstName, lastName, email, phone string) (*domain.Contact, error) {
			return nil, store.ErrContactNotFound
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodPut, "/api/contacts/42", map[string]string{
		"first_name": "Johnny",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactHandlerDelete(t *testing.T) {
	svc := &mocks.MockContactService{
		DeleteFn: func(ctx context.Context, userID, contactID int64) error {
			require.Equal(t, int64(42), contactID)
			return nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodDelete, "/api/contacts/42", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "OK", body["data"])
}

func TestContactHandlerSearch(t *testing.T) {
	var captured store.ContactFilter
	svc := &mocks.MockContactService{
		SearchFn: func(ctx context.Context, userID int64, filter store.ContactFilter) (*service.ContactPage, error) {
			captured = filter
			return &service.ContactPage{
				Contacts: []domain.Contact{
					{ID: 1, FirstName: "John", UserID: userID},
					{ID: 2, FirstName: "Jane", UserID: userID},
				},
				Page:      1,
				TotalPage: 2,
				TotalItem: 15,
			}, nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodGet, "/api/contacts?name=doe&page=1&size=10", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doe", captured.Name)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 10, captured.Size)

	body := decodeBody(t, rec)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)

	paging, ok := body["paging"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), paging["page"])
	assert.Equal(t, float64(2), paging["total_page"])
	assert.Equal(t, float64(15), paging["total_item"])
}

func TestContactHandlerSearchDefaults(t *testing.T) {
	var captured store.ContactFilter
	svc := &mocks.MockContactService{
		SearchFn: func(ctx context.Context, userID int64, filter store.ContactFilter) (*service.ContactPage, error) {
			captured = filter
			return &service.ContactPage{Contacts: []domain.Contact{}, Page: filter.Page}, nil
		},
	}

	rec := doRequest(t, contactRouter(svc, testUser()), http.MethodGet, "/api/contacts?page=abc&size=-5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.DefaultPage, captured.Page)
	assert.Equal(t, service.DefaultSize, captured.Size)
}
