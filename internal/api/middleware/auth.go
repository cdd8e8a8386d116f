package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactsapp/contacts-api/internal/api/shared"
	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/store"
)

// AuthMiddleware authenticates requests by resolving the opaque token in
// the Authorization header to a user row.
type AuthMiddleware struct {
	userStore store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		userStore: userStore,
	}
}

// Authenticate resolves the Authorization header into a User and attaches
// it to the request context. The token is the raw header value, compared
// for exact equality; there is no Bearer prefix and no expiry. A missing
// header short-circuits before the store is touched.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := m.userStore.GetByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}
			slog.Error("failed to resolve session token", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	return user, ok && user != nil
}
