package throw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	throwKeyPrefix         = "throw:"
	playerThrowsKeyPrefix  = "player_throws:"
	channelThrowsKeyPrefix = "channel_throws:"

	// DefaultListLimit is how many throws a list returns when no limit is given
	DefaultListLimit = 10
)

// ErrThrowNotFound is returned when a throw is not found
var ErrThrowNotFound = errors.New("throw not found")

// Config holds configuration for the Redis throw repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed throw repository
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

// SaveThrow persists a throw to Redis and indexes it by player and channel
func (r *redisRepository) SaveThrow(ctx context.Context, input *SaveThrowInput) error {
	if input == nil || input.Throw == nil {
		return errors.New("input and throw cannot be nil")
	}

	throw := input.Throw
	if throw.ID == "" {
		return errors.New("throw ID cannot be empty")
	}

	throwJSON, err := json.Marshal(throw)
	if err != nil {
		return fmt.Errorf("failed to marshal throw: %w", err)
	}

	pipe := r.client.TxPipeline()

	throwKey := fmt.Sprintf("%s%s", throwKeyPrefix, throw.ID)
	pipe.Set(ctx, throwKey, throwJSON, 0) // No expiration for now

	score := float64(throw.Timestamp.UnixNano())
	if throw.PlayerID != "" {
		pipe.ZAdd(ctx, fmt.Sprintf("%s%s", playerThrowsKeyPrefix, throw.PlayerID), redis.Z{
			Score:  score,
			Member: throw.ID,
		})
	}
	if throw.ChannelID != "" {
		pipe.ZAdd(ctx, fmt.Sprintf("%s%s", channelThrowsKeyPrefix, throw.ChannelID), redis.Z{
			Score:  score,
			Member: throw.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save throw: %w", err)
	}

	return nil
}

// GetThrow retrieves a throw by ID from Redis
func (r *redisRepository) GetThrow(ctx context.Context, input *GetThrowInput) (*models.Throw, error) {
	if input == nil || input.ThrowID == "" {
		return nil, errors.New("input and throw ID cannot be empty")
	}

	throwJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", throwKeyPrefix, input.ThrowID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrThrowNotFound
		}
		return nil, fmt.Errorf("failed to get throw: %w", err)
	}

	var throw models.Throw
	if err := json.Unmarshal([]byte(throwJSON), &throw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal throw: %w", err)
	}

	return &throw, nil
}

// ListThrowsByPlayer retrieves a player's most recent throws
func (r *redisRepository) ListThrowsByPlayer(ctx context.Context, input *ListThrowsByPlayerInput) (*ListThrowsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	return r.listRecent(ctx, fmt.Sprintf("%s%s", playerThrowsKeyPrefix, input.PlayerID), input.Limit)
}

// ListThrowsByChannel retrieves a channel's most recent throws
func (r *redisRepository) ListThrowsByChannel(ctx context.Context, input *ListThrowsByChannelInput) (*ListThrowsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	return r.listRecent(ctx, fmt.Sprintf("%s%s", channelThrowsKeyPrefix, input.ChannelID), input.Limit)
}

// listRecent loads the newest throws referenced by an index
func (r *redisRepository) listRecent(ctx context.Context, indexKey string, limit int) (*ListThrowsOutput, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	throwIDs, err := r.client.ZRevRange(ctx, indexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get throw index: %w", err)
	}

	output := &ListThrowsOutput{
		Throws: make([]*models.Throw, 0, len(throwIDs)),
	}
	if len(throwIDs) == 0 {
		return output, nil
	}

	keys := make([]string, len(throwIDs))
	for i, id := range throwIDs {
		keys[i] = fmt.Sprintf("%s%s", throwKeyPrefix, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get throws: %w", err)
	}

	for _, v := range values {
		// Index entries can outlive their throw
		throwJSON, ok := v.(string)
		if !ok {
			continue
		}

		var throw models.Throw
		if err := json.Unmarshal([]byte(throwJSON), &throw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal throw: %w", err)
		}
		output.Throws = append(output.Throws, &throw)
	}

	return output, nil
}
