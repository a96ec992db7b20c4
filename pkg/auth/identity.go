package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

const UserIDHeader = "X-User-Id"

var (
	// ErrNoIdentity means the request carries no caller identity at all.
	ErrNoIdentity = errors.New("missing caller identity")
	// ErrInvalidIdentity means an identity was presented but could not be accepted.
	ErrInvalidIdentity = errors.New("invalid caller identity")
	// ErrMissingUserIDHeader is the ErrNoIdentity HeaderResolver reports.
	ErrMissingUserIDHeader = fmt.Errorf("%w: %s header not set", ErrNoIdentity, UserIDHeader)
)

// Resolver turns a request into the id of the calling user.
type Resolver interface {
	Resolve(r *http.Request) (int64, error)
}

// HeaderResolver trusts the user id the client puts in X-User-Id. Nothing
// proves the caller owns that id; use JWTManager where that matters.
type HeaderResolver struct{}

func (HeaderResolver) Resolve(r *http.Request) (int64, error) {
	// Header.Get canonicalizes, so x-user-id is matched too.
	raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if raw == "" {
		return 0, ErrMissingUserIDHeader
	}
	id, err := models.ParseID(raw)
	if err != nil {
		return 0, ErrInvalidIdentity
	}
	return id, nil
}

// ResolveOptional is Resolve for endpoints where identity is optional: no
// identity gives 0 and a nil error, a bad one is still an error.
func ResolveOptional(res Resolver, r *http.Request) (int64, error) {
	id, err := res.Resolve(r)
	if errors.Is(err, ErrNoIdentity) {
		return 0, nil
	}
	return id, err
}
