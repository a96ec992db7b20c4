package store

import (
	"context"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

// AddContact inserts the directed edge userID -> contactID. Adding an
// existing edge is a no-op; added reports whether a row was written.
func (s *Store) AddContact(ctx context.Context, userID, contactID int64) (bool, error) {
	s.logger.Info("Adding contact", "user_id", userID, "contact_id", contactID)

	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO contacts (user_id, contact_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, contact_id) DO NOTHING`, userID, contactID)
	if err != nil {
		err = translate(err)
		s.logger.Error("Failed to add contact", "error", err, "user_id", userID, "contact_id", contactID)
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		s.logger.Debug("Contact already present", "user_id", userID, "contact_id", contactID)
	}
	return n > 0, nil
}

// GetContacts lists userID's contacts, online ones first, then by name.
func (s *Store) GetContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	s.logger.Debug("Getting contacts", "user_id", userID)

	contacts := []models.Contact{}
	err := s.DB.SelectContext(ctx, &contacts, `
		SELECT u.id, u.phone, u.name, u.avatar, u.bio, u.is_online, c.added_at
		FROM contacts c
		JOIN users u ON u.id = c.contact_id
		WHERE c.user_id = $1
		ORDER BY u.is_online DESC, u.name ASC`, userID)
	if err != nil {
		s.logger.Error("Failed to get contacts", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Debug("Contacts retrieved", "user_id", userID, "contact_count", len(contacts))
	return contacts, nil
}
