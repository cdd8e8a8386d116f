package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactsapp/contacts-api/internal/api/middleware"
	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/mocks"
)

func authedHandler(t *testing.T, users *mocks.MockUserStore) (http.Handler, *int64) {
	t.Helper()

	var seenUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.CurrentUser(r)
		require.True(t, ok)
		seenUserID = user.ID
		w.WriteHeader(http.StatusOK)
	})

	return middleware.NewAuthMiddleware(users).Authenticate(next), &seenUserID
}

func TestAuthenticate(t *testing.T) {
	users := mocks.NewMockUserStore()
	token := "session-token"
	user := &domain.User{ID: 7, Username: "john", Name: "John Doe", Token: &token}
	users.Users["john"] = user

	handler, seenUserID := authedHandler(t, users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), *seenUserID)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	users := mocks.NewMockUserStore()
	users.GetByTokenFn = func(ctx context.Context, token string) (*domain.User, error) {
		t.Fatal("store must not be queried without a token")
		return nil, nil
	}

	handler, _ := authedHandler(t, users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["errors"])
}

func TestAuthenticateUnknownToken(t *testing.T) {
	handler, _ := authedHandler(t, mocks.NewMockUserStore())

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set("Authorization", "stale-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateClearedToken(t *testing.T) {
	users := mocks.NewMockUserStore()
	users.Users["john"] = &domain.User{ID: 7, Username: "john", Name: "John Doe", Token: nil}

	handler, _ := authedHandler(t, users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set("Authorization", "old-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateStoreFailure(t *testing.T) {
	users := mocks.NewMockUserStore()
	users.GetByTokenFn = func(ctx context.Context, token string) (*domain.User, error) {
		return nil, errors.New("connection refused")
	}

	handler, _ := authedHandler(t, users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set("Authorization", "session-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Authentication error", body["errors"])
}

func TestCurrentUserAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := middleware.CurrentUser(req)
	assert.False(t, ok)
}
