package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/msniranjan18/chit-chat-lite/config"
	_ "github.com/msniranjan18/chit-chat-lite/docs"
	"github.com/msniranjan18/chit-chat-lite/pkg/auth"
	"github.com/msniranjan18/chit-chat-lite/pkg/handlers"
)

// Backend is everything the HTTP layer needs from storage.
type Backend interface {
	handlers.UserStore
	handlers.ContactStore
	handlers.MessageStore
	Ping(ctx context.Context) error
}

// Allowed methods advertised on preflight, per resource.
const (
	authMethods     = "POST, OPTIONS"
	contactMethods  = "GET, POST, OPTIONS"
	userMethods     = "GET, OPTIONS"
	messageMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	healthzTimeout  = 2 * time.Second
	allowedHeaders  = "Content-Type, X-User-Id, Authorization"
	preflightMaxAge = "86400"
)

// NewRouter wires the four resources plus health and API docs. tokens may be nil.
func NewRouter(backend Backend, identity auth.Resolver, tokens handlers.TokenIssuer, cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	origin := cfg.CORS.AllowedOrigin

	authHandler := handlers.NewAuthHandler(backend, tokens, logger)
	contactHandler := handlers.NewContactHandler(backend, identity, logger)
	userHandler := handlers.NewUserHandler(backend, identity, logger)
	messageHandler := handlers.NewMessageHandler(backend, identity, logger)

	loginLimiter := newLoginLimiter(cfg.RateLimit, logger)

	mux.Handle("/api/auth", cors(origin, authMethods, loginLimiter.Handler(authHandler)))
	mux.Handle("/api/contacts", cors(origin, contactMethods, contactHandler))
	mux.Handle("/api/users", cors(origin, userMethods, userHandler))
	mux.Handle("/api/messages", cors(origin, messageMethods, messageHandler))

	mux.HandleFunc("GET /healthz", healthz(backend, logger))
	mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "Not found")
	})

	return requestID(accessLog(logger, recoverer(logger, mux)))
}

func healthz(backend Backend, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthzTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := backend.Ping(ctx); err != nil {
			logger.Error("Health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}
}
