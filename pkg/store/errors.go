package store

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a referenced user, chat or message does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a scoped update or delete matched no row
	// owned by the caller.
	ErrForbidden = errors.New("forbidden")
	// ErrSelfChat is returned when a user asks for a direct chat with themselves.
	ErrSelfChat = errors.New("cannot open a direct chat with yourself")
)

// translate maps driver errors onto the store's sentinels.
func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
		return fmt.Errorf("%w: %s", ErrNotFound, pqErr.Constraint)
	}
	return err
}
