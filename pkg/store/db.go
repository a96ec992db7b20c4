package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/msniranjan18/chit-chat-lite/config"
)

type Store struct {
	DB *sqlx.DB
	// RDB is nil when Redis is not configured; the direct chat cache is skipped then.
	RDB     *redis.Client
	chatTTL time.Duration
	logger  *slog.Logger
}

// New wraps already opened connections. rdb may be nil.
func New(db *sqlx.DB, rdb *redis.Client, chatTTL time.Duration, logger *slog.Logger) *Store {
	return &Store{
		DB:      db,
		RDB:     rdb,
		chatTTL: chatTTL,
		logger:  logger,
	}
}

// NewStore connects to PostgreSQL (retrying while it comes up) and, when a
// Redis URL is configured, to Redis.
func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	logger.Info("Initializing store", "redis_enabled", cfg.Redis.URL != "")

	db, err := connectPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = InitRedis(ctx, cfg.Redis.URL, logger)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	logger.Info("Store connections established")
	return New(db, rdb, cfg.Redis.ChatCacheTTL, logger), nil
}

func connectPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	attempts := max(cfg.ConnectRetries, 1)

	var db *sqlx.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = sqlx.ConnectContext(ctx, "postgres", cfg.URL)
		if err == nil {
			logger.Info("PostgreSQL connection successful", "attempt", i+1)
			break
		}
		logger.Warn("Waiting for PostgreSQL...", "attempt", i+1, "max_attempts", attempts, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", "error", err)
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	logger.Debug("PostgreSQL connection pool configured",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime)

	return db, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		phone VARCHAR(32) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		avatar TEXT,
		bio TEXT,
		is_online BOOLEAN NOT NULL DEFAULT FALSE,
		last_seen TIMESTAMPTZ DEFAULT NOW(),
		ip_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS contacts (
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		contact_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		added_at TIMESTAMPTZ DEFAULT NOW(),
		PRIMARY KEY (user_id, contact_id)
	);

	-- direct_key is "<low id>:<high id>" for direct chats, NULL for groups
	CREATE TABLE IF NOT EXISTS chats (
		id BIGSERIAL PRIMARY KEY,
		is_group BOOLEAN NOT NULL DEFAULT FALSE,
		direct_key TEXT UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS chat_members (
		chat_id BIGINT NOT NULL REFERENCES chats(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (chat_id, user_id)
	);

	CREATE INDEX IF NOT EXISTS idx_chat_members_user_id ON chat_members(user_id);

	CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		chat_id BIGINT NOT NULL REFERENCES chats(id) ON DELETE CASCADE,
		sender_id BIGINT NOT NULL REFERENCES users(id),
		text TEXT,
		is_voice BOOLEAN NOT NULL DEFAULT FALSE,
		voice_duration INTEGER,
		is_file BOOLEAN NOT NULL DEFAULT FALSE,
		file_name TEXT,
		file_size BIGINT,
		is_edited BOOLEAN NOT NULL DEFAULT FALSE,
		is_forwarded BOOLEAN NOT NULL DEFAULT FALSE,
		forwarded_from TEXT,
		reply_to_id BIGINT REFERENCES messages(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_messages_chat_id_created_at ON messages(chat_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_messages_sender_id ON messages(sender_id);
`

func (s *Store) InitSchema(ctx context.Context) error {
	s.logger.Info("Initializing database schema")

	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		s.logger.Error("Failed to initialize schema", "error", err)
		return err
	}

	s.logger.Info("Database schema initialized successfully")
	return nil
}

// Ping checks every backing service the store holds.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if s.RDB != nil {
		if err := s.RDB.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	s.logger.Info("Closing store connections")

	var errs []error
	if err := s.DB.Close(); err != nil {
		s.logger.Error("Failed to close PostgreSQL connection", "error", err)
		errs = append(errs, fmt.Errorf("postgres close: %w", err))
	}
	if s.RDB != nil {
		if err := s.RDB.Close(); err != nil {
			s.logger.Error("Failed to close Redis connection", "error", err)
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Info("Store connections closed successfully")
	return nil
}

// withTx runs fn in a transaction. The transaction is rolled back unless fn
// returns nil and the commit succeeds.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// StartPresenceSweeper marks users offline once their last_seen is older than
// timeout. It blocks until ctx is done.
func (s *Store) StartPresenceSweeper(ctx context.Context, interval, timeout time.Duration) {
	s.logger.Info("Starting presence sweeper", "interval", interval, "timeout", timeout)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Presence sweeper stopped")
			return
		case <-ticker.C:
			n, err := s.MarkIdleUsersOffline(ctx, time.Now().Add(-timeout))
			if err != nil {
				s.logger.Error("Error sweeping idle users", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Debug("Marked idle users offline", "updated_rows", n)
			}
		}
	}
}
