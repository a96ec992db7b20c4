package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/msniranjan18/chit-chat-lite/pkg/auth"
	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

const searchLimit = 50

type UserHandler struct {
	store    UserStore
	identity auth.Resolver
	logger   *slog.Logger
}

func NewUserHandler(store UserStore, identity auth.Resolver, logger *slog.Logger) *UserHandler {
	return &UserHandler{store: store, identity: identity, logger: logger}
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.SearchUsers(w, r)
	default:
		h.logger.Warn("Users: method not allowed", "method", r.Method)
		MethodNotAllowed(w, r)
	}
}

// SearchUsers finds users by name, phone or bio. An identified caller is
// left out of the results.
//
//	@Summary	Search users
//	@Tags		users
//	@Produce	json
//	@Param		query		query		string	true	"Substring to look for"
//	@Param		X-User-Id	header		int		false	"Caller id"
//	@Success	200			{object}	models.SearchResponse
//	@Failure	400			{object}	errorResponse
//	@Router		/users [get]
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.ResolveOptional(h.identity, r)
	if err != nil {
		h.logger.Warn("SearchUsers: invalid caller identity", "error", err)
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		h.logger.Warn("SearchUsers: empty query", "user_id", userID)
		WriteError(w, http.StatusBadRequest, "Query parameter is required")
		return
	}

	users, err := h.store.SearchUsers(r.Context(), query, userID, searchLimit)
	if err != nil {
		writeStoreError(w, r, h.logger, "SearchUsers", err)
		return
	}
	if users == nil {
		users = []models.UserSummary{}
	}

	h.logger.Debug("SearchUsers: search completed", "query", query, "result_count", len(users))
	writeJSON(w, http.StatusOK, models.SearchResponse{Users: users})
}
