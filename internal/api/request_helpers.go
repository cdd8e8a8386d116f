package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/contactsapp/contacts-api/internal/api/middleware"
	"github.com/contactsapp/contacts-api/internal/api/shared"
	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/service"
	"github.com/contactsapp/contacts-api/internal/store"
)

// currentUser extracts the authenticated user placed in the context by the
// auth middleware, writing a 401 if it is missing. A missing user here
// means a protected route was registered without the middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

// pathID parses a numeric path parameter. A value that does not parse to
// an id cannot match any row, so the caller treats it as not found, the
// same information-hiding rule as an ownership miss.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// searchFilter builds a contact search filter from the query string.
// Missing or malformed page/size fall back to the defaults.
func searchFilter(r *http.Request) store.ContactFilter {
	q := r.URL.Query()

	filter := store.ContactFilter{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
		Page:  service.DefaultPage,
		Size:  service.DefaultSize,
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if size, err := strconv.Atoi(q.Get("size")); err == nil && size > 0 {
		filter.Size = size
	}

	return filter
}
