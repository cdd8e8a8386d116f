package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/contactsapp/contacts-api/internal/api/shared"
	"github.com/contactsapp/contacts-api/internal/domain"
	"github.com/contactsapp/contacts-api/internal/service"
	"github.com/contactsapp/contacts-api/internal/store"
)

// AddressHandler handles address-related API requests. Addresses are
// nested under contacts; the service re-verifies the contact's ownership
// on every operation.
type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

// NewAddressHandler creates a new AddressHandler with the given dependencies.
func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		validator:      newValidator(),
	}
}

// addressScope pulls the authenticated user and the contactId path
// parameter shared by every address route. Returns false after writing an
// error response if either is unusable.
func (h *AddressHandler) addressScope(w http.ResponseWriter, r *http.Request) (*domain.User, int64, bool) {
	user, ok := currentUser(w, r)
	if !ok {
		return nil, 0, false
	}

	contactID, ok := pathID(r, "contactId")
	if !ok {
		HandleServiceError(w, r, store.ErrContactNotFound)
		return nil, 0, false
	}

	return user, contactID, true
}

// Create handles POST /api/contacts/{contactId}/addresses.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := h.addressScope(w, r)
	if !ok {
		return
	}

	var req AddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	address, err := h.addressService.Create(r.Context(), user.ID, contactID,
		req.Street, req.City, req.Province, req.Country, req.PostalCode)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Get handles GET /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := h.addressScope(w, r)
	if !ok {
		return
	}

	addressID, ok := pathID(r, "addressId")
	if !ok {
		HandleServiceError(w, r, store.ErrAddressNotFound)
		return
	}

	address, err := h.addressService.Get(r.Context(), user.ID, contactID, addressID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Update handles PUT /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := h.addressScope(w, r)
	if !ok {
		return
	}

	addressID, ok := pathID(r, "addressId")
	if !ok {
		HandleServiceError(w, r, store.ErrAddressNotFound)
		return
	}

	var req AddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	address, err := h.addressService.Update(r.Context(), user.ID, contactID, addressID,
		req.Street, req.City, req.Province, req.Country, req.PostalCode)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Delete handles DELETE /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := h.addressScope(w, r)
	if !ok {
		return
	}

	addressID, ok := pathID(r, "addressId")
	if !ok {
		HandleServiceError(w, r, store.ErrAddressNotFound)
		return
	}

	if err := h.addressService.Delete(r.Context(), user.ID, contactID, addressID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// List handles GET /api/contacts/{contactId}/addresses.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := h.addressScope(w, r)
	if !ok {
		return
	}

	addresses, err := h.addressService.List(r.Context(), user.ID, contactID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressesToResponse(addresses))
}
