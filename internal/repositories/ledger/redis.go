package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix          = "ledger_entry:"
	sessionEntriesKeyPrefix = "session_ledger:"
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddEntry adds a movement to the session ledger
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.ID == "" {
		return errors.New("ledger entry ID cannot be empty")
	}
	if entry.SessionID == "" {
		return errors.New("ledger entry session ID cannot be empty")
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	pipe := r.client.Pipeline()

	entryKey := fmt.Sprintf("%s%s", entryKeyPrefix, entry.ID)
	pipe.Set(ctx, entryKey, entryJSON, 0)

	sessionKey := fmt.Sprintf("%s%s", sessionEntriesKeyPrefix, entry.SessionID)
	pipe.ZAdd(ctx, sessionKey, redis.Z{
		Score:  float64(entry.Timestamp.UnixNano()),
		Member: entry.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add ledger entry: %w", err)
	}

	return nil
}

// GetEntriesForSession retrieves a session's movements in time order
func (r *redisRepository) GetEntriesForSession(ctx context.Context, input *GetEntriesForSessionInput) (*GetEntriesForSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionEntriesKeyPrefix, input.SessionID)
	entryIDs, err := r.client.ZRange(ctx, sessionKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry IDs for session: %w", err)
	}

	if len(entryIDs) == 0 {
		return &GetEntriesForSessionOutput{
			Entries: []*models.LedgerEntry{},
		}, nil
	}

	pipe := r.client.Pipeline()
	entryCommands := make([]*redis.StringCmd, 0, len(entryIDs))

	for _, entryID := range entryIDs {
		entryKey := fmt.Sprintf("%s%s", entryKeyPrefix, entryID)
		entryCommands = append(entryCommands, pipe.Get(ctx, entryKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	entries := make([]*models.LedgerEntry, 0, len(entryIDs))
	for i, cmd := range entryCommands {
		entryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get ledger entry %s: %w", entryIDs[i], err)
		}

		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ledger entry %s: %w", entryIDs[i], err)
		}

		if input.PlayerID != "" && entry.PlayerID != input.PlayerID {
			continue
		}

		entries = append(entries, &entry)
	}

	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[len(entries)-input.Limit:]
	}

	return &GetEntriesForSessionOutput{
		Entries: entries,
	}, nil
}

// DeleteEntries deletes every movement of a session
func (r *redisRepository) DeleteEntries(ctx context.Context, input *DeleteEntriesInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionEntriesKeyPrefix, input.SessionID)
	entryIDs, err := r.client.ZRange(ctx, sessionKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get entry IDs for session: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, entryID := range entryIDs {
		pipe.Del(ctx, fmt.Sprintf("%s%s", entryKeyPrefix, entryID))
	}
	pipe.Del(ctx, sessionKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete ledger entries: %w", err)
	}

	return nil
}
