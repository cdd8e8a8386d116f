package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/contactsapp/contacts-api/internal/api/shared"
	"github.com/contactsapp/contacts-api/internal/service"
	"github.com/contactsapp/contacts-api/internal/store"
)

// ContactHandler handles contact-related API requests.
type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

// NewContactHandler creates a new ContactHandler with the given dependencies.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      newValidator(),
	}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	contact, err := h.contactService.Create(r.Context(), user.ID,
		req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Get handles GET /api/contacts/{contactId}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(r, "contactId")
	if !ok {
		HandleServiceError(w, r, store.ErrContactNotFound)
		return
	}

	contact, err := h.contactService.Get(r.Context(), user.ID, contactID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Update handles PUT /api/contacts/{contactId}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(r, "contactId")
	if !ok {
		HandleServiceError(w, r, store.ErrContactNotFound)
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	contact, err := h.contactService.Update(r.Context(), user.ID, contactID,
		req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Delete handles DELETE /api/contacts/{contactId}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(r, "contactId")
	if !ok {
		HandleServiceError(w, r, store.ErrContactNotFound)
		return
	}

	if err := h.contactService.Delete(r.Context(), user.ID, contactID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Search handles GET /api/contacts.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	page, err := h.contactService.Search(r.Context(), user.ID, searchFilter(r))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, contactsToResponse(page.Contacts), shared.Paging{
		Page:      page.Page,
		TotalPage: page.TotalPage,
		TotalItem: page.TotalItem,
	})
}
