package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/msniranjan18/chit-chat-lite/pkg/auth"
	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

type MessageHandler struct {
	store    MessageStore
	identity auth.Resolver
	logger   *slog.Logger
}

func NewMessageHandler(store MessageStore, identity auth.Resolver, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{store: store, identity: identity, logger: logger}
}

func (h *MessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetMessages(w, r)
	case http.MethodPost:
		h.SendMessage(w, r)
	case http.MethodPut:
		h.EditMessage(w, r)
	case http.MethodDelete:
		h.DeleteMessage(w, r)
	default:
		h.logger.Warn("Messages: method not allowed", "method", r.Method)
		MethodNotAllowed(w, r)
	}
}

// GetMessages returns the full history of a chat, creating the direct chat
// with contactId first if the pair has none yet.
//
//	@Summary	Chat history
//	@Tags		messages
//	@Produce	json
//	@Param		X-User-Id	header		int	true	"Caller id"
//	@Param		chatId		query		int	false	"Existing chat"
//	@Param		contactId	query		int	false	"Other participant; wins over chatId"
//	@Success	200			{object}	models.HistoryResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	401			{object}	errorResponse
//	@Router		/messages [get]
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r, h.identity, h.logger, "GetMessages")
	if !ok {
		return
	}

	chatID, err := queryID(r, "chatId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "chatId is invalid")
		return
	}
	contactID, err := queryID(r, "contactId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "contactId is invalid")
		return
	}
	ref := models.ChatRef{ChatID: chatID, ContactID: contactID}
	if err := ref.Validate(); err != nil {
		h.logger.Warn("GetMessages: no chat reference", "user_id", userID)
		WriteError(w, http.StatusBadRequest, "chatId or contactId required")
		return
	}

	resolved, messages, err := h.store.GetChatHistory(r.Context(), userID, ref)
	if err != nil {
		writeStoreError(w, r, h.logger, "GetMessages", err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	h.logger.Debug("GetMessages: history loaded", "user_id", userID, "chat_id", resolved, "message_count", len(messages))
	writeJSON(w, http.StatusOK, models.HistoryResponse{ChatID: resolved, Messages: messages})
}

// SendMessage stores a text, voice or file message.
//
//	@Summary	Send a message
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Param		X-User-Id	header		int							true	"Caller id"
//	@Param		body		body		models.SendMessageRequest	true	"Message"
//	@Success	200			{object}	models.SendMessageResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	401			{object}	errorResponse
//	@Failure	404			{object}	errorResponse
//	@Router		/messages [post]
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r, h.identity, h.logger, "SendMessage")
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("SendMessage: invalid request body", "user_id", userID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err, "Invalid request body"))
		return
	}

	draft, err := req.Draft()
	if errors.Is(err, models.ErrEmptyMessage) {
		WriteError(w, http.StatusBadRequest, "Message text required")
		return
	}
	ref := req.Ref()
	if err := ref.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, "chatId or contactId required")
		return
	}

	msg, err := h.store.SendMessage(r.Context(), userID, ref, draft)
	if err != nil {
		writeStoreError(w, r, h.logger, "SendMessage", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SendMessageResponse{
		ID:        msg.ID,
		ChatID:    msg.ChatID,
		CreatedAt: msg.CreatedAt,
	})
}

// EditMessage replaces the text of one of the caller's own messages.
//
//	@Summary	Edit a message
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Param		X-User-Id	header		int							true	"Caller id"
//	@Param		body		body		models.EditMessageRequest	true	"New text"
//	@Success	200			{object}	models.ActionResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	403			{object}	errorResponse
//	@Router		/messages [put]
func (h *MessageHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r, h.identity, h.logger, "EditMessage")
	if !ok {
		return
	}

	var req models.EditMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("EditMessage: invalid request body", "user_id", userID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err, "messageId and text required"))
		return
	}

	if err := h.store.EditMessage(r.Context(), userID, req.MessageID.Int64(), req.Text); err != nil {
		writeStoreError(w, r, h.logger, "EditMessage", err)
		return
	}

	writeJSON(w, http.StatusOK, models.ActionResponse{Success: true})
}

// DeleteMessage removes one of the caller's own messages for everyone.
//
//	@Summary	Delete a message
//	@Tags		messages
//	@Produce	json
//	@Param		X-User-Id	header		int	true	"Caller id"
//	@Param		messageId	query		int	true	"Message to delete"
//	@Success	200			{object}	models.ActionResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	403			{object}	errorResponse
//	@Router		/messages [delete]
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r, h.identity, h.logger, "DeleteMessage")
	if !ok {
		return
	}

	messageID, err := queryID(r, "messageId")
	if err != nil || messageID == 0 {
		WriteError(w, http.StatusBadRequest, "messageId required")
		return
	}

	if err := h.store.DeleteMessage(r.Context(), userID, messageID); err != nil {
		writeStoreError(w, r, h.logger, "DeleteMessage", err)
		return
	}

	writeJSON(w, http.StatusOK, models.ActionResponse{Success: true})
}
