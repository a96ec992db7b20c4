package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

type AuthHandler struct {
	store  UserStore
	tokens TokenIssuer
	logger *slog.Logger
}

// NewAuthHandler builds the login handler. tokens may be nil.
func NewAuthHandler(store UserStore, tokens TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, logger: logger}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Login(w, r)
	default:
		h.logger.Warn("Auth: method not allowed", "method", r.Method)
		MethodNotAllowed(w, r)
	}
}

// Login registers a phone number on first use and signs the user in.
//
//	@Summary	Log in or register by phone
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.LoginRequest	true	"Phone and display name"
//	@Success	200		{object}	models.LoginResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	429		{object}	errorResponse
//	@Router		/auth [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("Login: invalid request body", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Phone = strings.TrimSpace(req.Phone)
	req.Name = strings.TrimSpace(req.Name)
	req.IPAddress = strings.TrimSpace(req.IPAddress)
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("Login: validation failed", "error", err)
		WriteError(w, http.StatusBadRequest, validationMessage(err, "Phone and name are required"))
		return
	}

	ip := req.IPAddress
	if ip == "" {
		ip = getIPAddress(r)
	}

	user, created, err := h.store.UpsertUserByPhone(r.Context(), req.Phone, req.Name, ip)
	if err != nil {
		writeStoreError(w, r, h.logger, "Login", err)
		return
	}

	resp := models.LoginResponse{Profile: user.Profile()}
	if h.tokens != nil {
		token, err := h.tokens.Issue(user.ID)
		if err != nil {
			h.logger.Error("Login: failed to issue token", "error", err, "user_id", user.ID)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		resp.Token = token
	}

	h.logger.Info("Login: user signed in", "user_id", user.ID, "created", created)
	writeJSON(w, http.StatusOK, resp)
}
