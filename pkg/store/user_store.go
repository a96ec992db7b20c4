package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

const userColumns = `id, phone, name, avatar, bio, is_online, last_seen, ip_address, created_at`

// UpsertUserByPhone logs a user in: an existing row gets the new name, is
// marked online and has last_seen and ip refreshed; otherwise a new online
// user is created. The refreshed row is returned.
func (s *Store) UpsertUserByPhone(ctx context.Context, phone, name, ip string) (*models.User, bool, error) {
	s.logger.Debug("Upserting user", "phone", phone)

	user := &models.User{}
	err := s.DB.GetContext(ctx, user, `
		UPDATE users
		SET name = $2, is_online = TRUE, last_seen = NOW(), ip_address = $3
		WHERE phone = $1
		RETURNING `+userColumns, phone, name, ip)
	if err == nil {
		s.logger.Info("User logged in", "user_id", user.ID)
		return user, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error("Failed to update user", "error", err, "phone", phone)
		return nil, false, err
	}

	// A concurrent first login for the same phone lands in the DO UPDATE arm.
	err = s.DB.GetContext(ctx, user, `
		INSERT INTO users (phone, name, is_online, last_seen, ip_address)
		VALUES ($1, $2, TRUE, NOW(), $3)
		ON CONFLICT (phone) DO UPDATE
		SET name = EXCLUDED.name, is_online = TRUE, last_seen = NOW(), ip_address = EXCLUDED.ip_address
		RETURNING `+userColumns, phone, name, ip)
	if err != nil {
		s.logger.Error("Failed to create user", "error", err, "phone", phone)
		return nil, false, err
	}

	s.logger.Info("User created", "user_id", user.ID)
	return user, true, nil
}

// SearchUsers returns up to limit users whose name, phone or bio contains
// query, ignoring case. excludeID is left out of the results; 0 excludes nobody.
func (s *Store) SearchUsers(ctx context.Context, query string, excludeID int64, limit int) ([]models.UserSummary, error) {
	s.logger.Debug("Searching users", "query", query, "exclude_id", excludeID, "limit", limit)

	pattern := "%" + escapeLike(query) + "%"
	users := []models.UserSummary{}
	err := s.DB.SelectContext(ctx, &users, `
		SELECT id, phone, name, avatar, bio, is_online
		FROM users
		WHERE (name ILIKE $1 OR phone ILIKE $1 OR bio ILIKE $1)
		  AND id <> $2
		LIMIT $3`, pattern, excludeID, limit)
	if err != nil {
		s.logger.Error("Failed to search users", "error", err, "query", query)
		return nil, err
	}

	s.logger.Debug("User search completed", "query", query, "result_count", len(users))
	return users, nil
}

// MarkIdleUsersOffline flips is_online for users not seen since cutoff.
func (s *Store) MarkIdleUsersOffline(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE users SET is_online = FALSE
		WHERE is_online = TRUE AND last_seen < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
