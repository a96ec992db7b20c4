package handlers

import (
	"log/slog"
	"net/http"

	"github.com/msniranjan18/chit-chat-lite/pkg/auth"
	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

type ContactHandler struct {
	store    ContactStore
	identity auth.Resolver
	logger   *slog.Logger
}

func NewContactHandler(store ContactStore, identity auth.Resolver, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{store: store, identity: identity, logger: logger}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetContacts(w, r)
	case http.MethodPost:
		h.AddContact(w, r)
	default:
		h.logger.Warn("Contacts: method not allowed", "method", r.Method)
		MethodNotAllowed(w, r)
	}
}

// GetContacts lists the caller's contacts, online ones first.
//
//	@Summary	List contacts
//	@Tags		contacts
//	@Produce	json
//	@Param		X-User-Id	header		int	true	"Caller id"
//	@Success	200			{object}	models.ContactsResponse
//	@Failure	401			{object}	errorResponse
//	@Router		/contacts [get]
func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r, h.identity, h.logger, "GetContacts")
	if !ok {
		return
	}

	contacts, err := h.store.GetContacts(r.Context(), userID)
	if err != nil {
		writeStoreError(w, r, h.logger, "GetContacts", err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	h.logger.Debug("GetContacts: retrieved contacts", "user_id", userID, "contact_count", len(contacts))
	writeJSON(w, http.StatusOK, models.ContactsResponse{Contacts: contacts})
}

// AddContact adds a directed contact edge; repeating it is harmless.
//
//	@Summary	Add a contact
//	@Tags		contacts
//	@Accept		json
//	@Produce	json
//	@Param		X-User-Id	header		int							true	"Caller id"
//	@Param		body		body		models.AddContactRequest	true	"Contact to add"
//	@Success	200			{object}	models.ActionResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	401			{object}	errorResponse
//	@Failure	404			{object}	errorResponse
//	@Router		/contacts [post]
func (h *ContactHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r, h.identity, h.logger, "AddContact")
	if !ok {
		return
	}

	var req models.AddContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("AddContact: invalid request body", "user_id", userID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("AddContact: missing target user ID", "requester_id", userID)
		WriteError(w, http.StatusBadRequest, "Contact ID is required")
		return
	}

	added, err := h.store.AddContact(r.Context(), userID, req.ContactID.Int64())
	if err != nil {
		writeStoreError(w, r, h.logger, "AddContact", err)
		return
	}

	h.logger.Info("AddContact: contact saved", "user_id", userID, "contact_id", req.ContactID, "new", added)
	writeJSON(w, http.StatusOK, models.ActionResponse{Success: true, Message: "Contact added"})
}
