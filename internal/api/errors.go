package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/contactsapp/contacts-api/internal/api/shared"
	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/service/auth"
	"github.com/contactsapp/contacts-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This is
// the system's closed error taxonomy: authentication failures are 401,
// validation failures and duplicates are 400, missing or not-owned
// resources are 404, and everything else is 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client-facing message for an error. Known
// errors get fixed messages; unexpected failures surface their own
// message under a 500, which is the only place raw errors reach clients.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return "Unauthorized"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Username or password wrong"
	case errors.Is(err, store.ErrContactNotFound):
		return "Contact is not found"
	case errors.Is(err, store.ErrAddressNotFound):
		return "Address is not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User is not found"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already registered"
	case domain.IsValidationError(err):
		return err.Error()
	default:
		return err.Error()
	}
}

// HandleServiceError is the single dispatch point that turns a domain,
// store or auth error into an HTTP error response with the uniform
// {errors} envelope. Handlers never write error bodies themselves.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithError(w, r, status, errorMessage(err))
}

// ValidationMessages converts a validator.ValidationErrors into a list of
// per-field messages for the {errors} envelope. Non-validator errors
// collapse to a single generic message.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}
