package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/msniranjan18/chit-chat-lite/pkg/auth"
	"github.com/msniranjan18/chit-chat-lite/pkg/models"
	"github.com/msniranjan18/chit-chat-lite/pkg/store"
)

const maxBodyBytes = 1 << 20

// UserStore is the slice of the store used by login and search.
type UserStore interface {
	UpsertUserByPhone(ctx context.Context, phone, name, ip string) (*models.User, bool, error)
	SearchUsers(ctx context.Context, query string, excludeID int64, limit int) ([]models.UserSummary, error)
}

type ContactStore interface {
	AddContact(ctx context.Context, userID, contactID int64) (bool, error)
	GetContacts(ctx context.Context, userID int64) ([]models.Contact, error)
}

type MessageStore interface {
	GetChatHistory(ctx context.Context, userID int64, ref models.ChatRef) (int64, []models.Message, error)
	SendMessage(ctx context.Context, userID int64, ref models.ChatRef, draft models.MessageDraft) (*models.Message, error)
	EditMessage(ctx context.Context, userID, messageID int64, text string) error
	DeleteMessage(ctx context.Context, userID, messageID int64) error
}

// TokenIssuer hands out session tokens at login. It is nil when callers
// identify themselves with the X-User-Id header.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

var (
	_ UserStore    = (*store.Store)(nil)
	_ ContactStore = (*store.Store)(nil)
	_ MessageStore = (*store.Store)(nil)
	_ TokenIssuer  = (*auth.JWTManager)(nil)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// MethodNotAllowed is the JSON 405 shared by every resource.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// validationMessage turns a validator failure into a client message. Missing
// fields get the handler's own wording.
func validationMessage(err error, missing string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return missing
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required", "required_without":
		return missing
	case "max":
		return fmt.Sprintf("%s is too long", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// caller resolves the required identity, answering 401 itself when missing.
func caller(w http.ResponseWriter, r *http.Request, identity auth.Resolver, logger *slog.Logger, op string) (int64, bool) {
	userID, err := identity.Resolve(r)
	if err != nil {
		logger.Warn(op+": unauthorized request", "method", r.Method, "path", r.URL.Path, "error", err)
		msg := "Unauthorized"
		if errors.Is(err, auth.ErrMissingUserIDHeader) {
			msg = "User ID required in X-User-Id header"
		}
		WriteError(w, http.StatusUnauthorized, msg)
		return 0, false
	}
	return userID, true
}

// writeStoreError maps store failures to responses. Anything unrecognized is
// logged and reported as a bare 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, store.ErrForbidden):
		WriteError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrSelfChat):
		WriteError(w, http.StatusBadRequest, "Cannot open a chat with yourself")
	case errors.Is(err, models.ErrChatRefMissing):
		WriteError(w, http.StatusBadRequest, "chatId or contactId required")
	case errors.Is(err, context.Canceled):
		logger.Debug(op+": request canceled", "path", r.URL.Path)
	default:
		logger.Error(op+": store failure", "error", err, "path", r.URL.Path)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func queryID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	return models.ParseID(raw)
}

func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		first, _, _ := strings.Cut(ip, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
