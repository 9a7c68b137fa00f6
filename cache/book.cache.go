// Package cache holds the optional redis-backed read cache for the catalog
// listing. Everything degrades to a pass-through when redis is not
// configured: a nil BookCache never errors and never hits.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"booknest/models"
)

const bookListKey = "booknest:books:all"

type BookCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewBookCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *BookCache {
	if client == nil {
		return nil
	}
	return &BookCache{client: client, ttl: ttl, log: log}
}

func (c *BookCache) GetList(ctx context.Context) ([]models.Book, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, bookListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("book cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		c.log.Warn("book cache payload corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, bookListKey)
		return nil, false
	}
	return books, true
}

func (c *BookCache) SetList(ctx context.Context, books []models.Book) {
	if c == nil {
		return
	}
	data, err := json.Marshal(books)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, bookListKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("book cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing after any catalog mutation.
func (c *BookCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, bookListKey).Err(); err != nil {
		c.log.Warn("book cache invalidation failed", zap.Error(err))
	}
}
