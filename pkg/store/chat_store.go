package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

// DirectKey is the order-independent key of the direct chat between a and b.
func DirectKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// resolveChat returns the chat ref points at for userID, creating the direct
// chat with ref.ContactID when none exists yet. It runs inside tx; an
// explicit chat id is trusted as given.
func (s *Store) resolveChat(ctx context.Context, tx *sqlx.Tx, userID int64, ref models.ChatRef) (int64, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}
	if !ref.ByContact() {
		return ref.ChatID, nil
	}
	if ref.ContactID == userID {
		return 0, ErrSelfChat
	}

	key := DirectKey(userID, ref.ContactID)
	if chatID, ok := s.cachedDirectChat(ctx, key); ok {
		return chatID, nil
	}

	chatID, err := s.findDirectChat(ctx, tx, userID, ref.ContactID)
	if err != nil {
		return 0, err
	}
	if chatID != 0 {
		return chatID, nil
	}
	return s.createDirectChat(ctx, tx, key, userID, ref.ContactID)
}

func (s *Store) findDirectChat(ctx context.Context, tx *sqlx.Tx, userID, contactID int64) (int64, error) {
	var chatID int64
	err := tx.GetContext(ctx, &chatID, `
		SELECT c.id
		FROM chats c
		JOIN chat_members cm1 ON c.id = cm1.chat_id
		JOIN chat_members cm2 ON c.id = cm2.chat_id
		WHERE c.is_group = FALSE
		AND cm1.user_id = $1 AND cm2.user_id = $2
		ORDER BY c.id
		LIMIT 1`, userID, contactID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		s.logger.Error("Failed to look up direct chat", "error", err, "user_id", userID, "contact_id", contactID)
		return 0, err
	}
	return chatID, nil
}

// createDirectChat inserts the chat keyed by the member pair. Losing the race
// to a concurrent creator leaves no row to return, so the winner's chat is
// read back once its transaction has committed.
func (s *Store) createDirectChat(ctx context.Context, tx *sqlx.Tx, key string, userID, contactID int64) (int64, error) {
	var chatID int64
	err := tx.GetContext(ctx, &chatID, `
		INSERT INTO chats (is_group, direct_key)
		VALUES (FALSE, $1)
		ON CONFLICT (direct_key) DO NOTHING
		RETURNING id`, key)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("Direct chat created concurrently, reusing it", "direct_key", key)
		err = tx.GetContext(ctx, &chatID, `SELECT id FROM chats WHERE direct_key = $1`, key)
	}
	if err != nil {
		s.logger.Error("Failed to create direct chat", "error", err, "direct_key", key)
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO chat_members (chat_id, user_id)
		VALUES ($1, $2), ($1, $3)
		ON CONFLICT (chat_id, user_id) DO NOTHING`, chatID, userID, contactID)
	if err != nil {
		err = translate(err)
		s.logger.Error("Failed to add direct chat members", "error", err, "chat_id", chatID)
		return 0, err
	}

	s.logger.Info("Direct chat created", "chat_id", chatID, "user_id", userID, "contact_id", contactID)
	return chatID, nil
}
