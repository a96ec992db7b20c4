package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

// GetChatHistory resolves ref for userID and returns the whole chat, oldest
// message first, annotated for userID.
func (s *Store) GetChatHistory(ctx context.Context, userID int64, ref models.ChatRef) (int64, []models.Message, error) {
	s.logger.Debug("Getting chat history", "user_id", userID, "chat_id", ref.ChatID, "contact_id", ref.ContactID)

	var chatID int64
	messages := []models.Message{}
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if chatID, err = s.resolveChat(ctx, tx, userID, ref); err != nil {
			return err
		}
		return tx.SelectContext(ctx, &messages, `
			SELECT m.id, m.chat_id, m.sender_id, m.text, m.is_voice, m.voice_duration,
			       m.is_file, m.file_name, m.file_size, m.is_edited, m.is_forwarded,
			       m.forwarded_from, m.reply_to_id, m.created_at,
			       u.name AS sender_name, (m.sender_id = $2) AS is_own
			FROM messages m
			JOIN users u ON u.id = m.sender_id
			WHERE m.chat_id = $1
			ORDER BY m.created_at ASC, m.id ASC`, chatID, userID)
	})
	if err != nil {
		err = translate(err)
		s.logger.Error("Failed to get chat history", "error", err, "user_id", userID)
		return 0, nil, err
	}

	s.rememberDirectChat(ctx, userID, ref, chatID)
	s.logger.Debug("Chat history retrieved", "chat_id", chatID, "message_count", len(messages))
	return chatID, messages, nil
}

// SendMessage resolves ref and inserts the message in one transaction.
func (s *Store) SendMessage(ctx context.Context, userID int64, ref models.ChatRef, draft models.MessageDraft) (*models.Message, error) {
	s.logger.Info("Sending message", "user_id", userID, "chat_id", ref.ChatID, "contact_id", ref.ContactID,
		"is_voice", draft.IsVoice, "is_file", draft.IsFile)

	msg := &models.Message{
		SenderID:      userID,
		Text:          draft.Text,
		IsVoice:       draft.IsVoice,
		VoiceDuration: draft.VoiceDuration,
		IsFile:        draft.IsFile,
		FileName:      draft.FileName,
		FileSize:      draft.FileSize,
		IsForwarded:   draft.IsForwarded,
		ForwardedFrom: draft.ForwardedFrom,
		ReplyToID:     draft.ReplyToID,
		IsOwn:         true,
	}

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		chatID, err := s.resolveChat(ctx, tx, userID, ref)
		if err != nil {
			return err
		}
		msg.ChatID = chatID

		return tx.QueryRowxContext(ctx, `
			INSERT INTO messages (
				chat_id, sender_id, text, is_voice, voice_duration,
				is_file, file_name, file_size, is_forwarded, forwarded_from, reply_to_id
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at`,
			msg.ChatID, msg.SenderID, msg.Text, msg.IsVoice, msg.VoiceDuration,
			msg.IsFile, msg.FileName, msg.FileSize, msg.IsForwarded, msg.ForwardedFrom, msg.ReplyToID,
		).Scan(&msg.ID, &msg.CreatedAt)
	})
	if err != nil {
		err = translate(err)
		s.logger.Error("Failed to send message", "error", err, "user_id", userID)
		return nil, err
	}

	s.rememberDirectChat(ctx, userID, ref, msg.ChatID)
	s.logger.Info("Message sent", "message_id", msg.ID, "chat_id", msg.ChatID)
	return msg, nil
}

// EditMessage replaces the text of a message sent by userID and marks it edited.
// ErrForbidden covers both a missing message and someone else's message.
func (s *Store) EditMessage(ctx context.Context, userID, messageID int64, text string) error {
	s.logger.Info("Editing message", "message_id", messageID, "user_id", userID)

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE messages SET text = $1, is_edited = TRUE
			WHERE id = $2 AND sender_id = $3`, strings.TrimSpace(text), messageID, userID)
		if err != nil {
			s.logger.Error("Failed to edit message", "error", err, "message_id", messageID)
			return err
		}
		return s.requireOwnedRow(res.RowsAffected, "edit", messageID, userID)
	})
}

// DeleteMessage hard-deletes a message sent by userID.
func (s *Store) DeleteMessage(ctx context.Context, userID, messageID int64) error {
	s.logger.Info("Deleting message", "message_id", messageID, "user_id", userID)

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM messages WHERE id = $1 AND sender_id = $2`, messageID, userID)
		if err != nil {
			s.logger.Error("Failed to delete message", "error", err, "message_id", messageID)
			return err
		}
		return s.requireOwnedRow(res.RowsAffected, "delete", messageID, userID)
	})
}

func (s *Store) requireOwnedRow(rowsAffected func() (int64, error), action string, messageID, userID int64) error {
	n, err := rowsAffected()
	if err != nil {
		return fmt.Errorf("%s message: %w", action, err)
	}
	if n == 0 {
		s.logger.Warn("Message not owned by caller", "action", action, "message_id", messageID, "user_id", userID)
		return ErrForbidden
	}
	return nil
}
