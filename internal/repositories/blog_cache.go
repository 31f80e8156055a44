package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// BlogCacheRepository caches blogs in Redis as JSON
type BlogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached blogs
}

func NewBlogCacheRepository(client *redis.Client, expiration time.Duration) *BlogCacheRepository {
	return &BlogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func blogCacheKey(id uuid.UUID) string {
	return "blog:" + id.String()
}

// Get returns the cached blog, or nil on a cache miss.
func (r *BlogCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.BlogDB, error) {
	key := blogCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		return nil, err
	}

	var blog models.BlogDB
	if err := json.Unmarshal(val, &blog); err != nil {
		logger.Log.Debugw("cache decode", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &blog, nil
}

// Set stores blog with the repository expiration.
func (r *BlogCacheRepository) Set(ctx context.Context, blog *models.BlogDB) error {
	key := blogCacheKey(blog.ID)

	val, err := json.Marshal(blog)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Debugw("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Delete evicts the cached blog. Evicting a missing key is not an error.
func (r *BlogCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := blogCacheKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("cache delete",
		"key", key,
		"error", err,
	)

	return err
}
