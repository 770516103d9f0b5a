package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"deskflow/internal/domain/status"
	"deskflow/internal/shared/logger"
)

const statusDirectoryKey = "status:directory"

type cachedStatus struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CompanyID *uint     `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RedisStatusCache caches the whole status directory as one JSON document.
// The directory is small and read on nearly every ticket mutation, so a
// single key with a short TTL keeps lookups off the database.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisStatusCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisStatusCache {
	return &RedisStatusCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetAll returns the cached directory, or nil on a cache miss.
func (c *RedisStatusCache) GetAll(ctx context.Context) ([]*status.Status, error) {
	payload, err := c.client.Get(ctx, statusDirectoryKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status directory from cache: %w", err)
	}

	var rows []cachedStatus
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached status directory: %w", err)
	}

	statuses := make([]*status.Status, 0, len(rows))
	for _, row := range rows {
		s, err := status.ReconstructStatus(row.ID, row.Name, row.SortOrder, row.CompanyID, row.CreatedAt, row.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct cached status (id=%d): %w", row.ID, err)
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}

func (c *RedisStatusCache) SetAll(ctx context.Context, statuses []*status.Status) error {
	rows := make([]cachedStatus, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, cachedStatus{
			ID:        s.ID(),
			Name:      s.Name(),
			SortOrder: s.SortOrder(),
			CompanyID: s.CompanyID(),
			CreatedAt: s.CreatedAt(),
			UpdatedAt: s.UpdatedAt(),
		})
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal status directory: %w", err)
	}

	if err := c.client.Set(ctx, statusDirectoryKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set status directory in cache: %w", err)
	}

	return nil
}

func (c *RedisStatusCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, statusDirectoryKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate status directory cache: %w", err)
	}
	return nil
}
