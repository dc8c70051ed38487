package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Eterniance/whist-points/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "session:"
	sessionIndexKey  = "sessions"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession persists a session snapshot to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session

	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Save the session and index it in one round trip
	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, sess.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)
	pipe.SAdd(ctx, sessionIndexKey, sess.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session snapshot from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)

	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &GetSessionOutput{
		Session: &sess,
	}, nil
}

// DeleteSession removes a session snapshot from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	pipe.Del(ctx, sessionKey)
	pipe.SRem(ctx, sessionIndexKey, input.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// ListSessionIDs retrieves the IDs of all stored sessions
func (r *redisRepository) ListSessionIDs(ctx context.Context, input *ListSessionIDsInput) (*ListSessionIDsOutput, error) {
	ids, err := r.client.SMembers(ctx, sessionIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &ListSessionIDsOutput{
		SessionIDs: ids,
	}, nil
}
