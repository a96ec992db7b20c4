package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
)

func InitRedis(ctx context.Context, url string, logger *slog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 5
	opt.MaxRetries = 3
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second
	opt.PoolTimeout = 4 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		logger.Error("Failed to ping Redis", "error", err)
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("Redis connected successfully", "addr", opt.Addr, "db", opt.DB)
	return client, nil
}

func directChatKey(pairKey string) string {
	return fmt.Sprintf("chat:direct:%s", pairKey)
}

// cachedDirectChat looks up the chat id for a member pair. Redis failures are
// logged and treated as a miss so the database stays authoritative.
func (s *Store) cachedDirectChat(ctx context.Context, pairKey string) (int64, bool) {
	if s.RDB == nil {
		return 0, false
	}

	chatID, err := s.RDB.Get(ctx, directChatKey(pairKey)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false
	}
	if err != nil {
		s.logger.Warn("Direct chat cache read failed", "error", err, "direct_key", pairKey)
		return 0, false
	}

	s.logger.Debug("Direct chat cache hit", "direct_key", pairKey, "chat_id", chatID)
	return chatID, true
}

// rememberDirectChat caches a resolved direct chat. It must only be called
// after the transaction that may have created the chat has committed.
func (s *Store) rememberDirectChat(ctx context.Context, userID int64, ref models.ChatRef, chatID int64) {
	if s.RDB == nil || !ref.ByContact() || chatID == 0 {
		return
	}

	pairKey := DirectKey(userID, ref.ContactID)
	if err := s.RDB.Set(ctx, directChatKey(pairKey), chatID, s.chatTTL).Err(); err != nil {
		s.logger.Warn("Direct chat cache write failed", "error", err, "direct_key", pairKey)
	}
}
