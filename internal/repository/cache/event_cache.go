// Package cache holds a Redis read-through cache for event lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"eventbooking/internal/domain"
)

const (
	eventKeyPrefix = "event:id:"
	slugKeyPrefix  = "event:slug:"
)

// Client is the subset of *redis.Client used by the cache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewRedisClient returns a client for addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// eventRepository wraps an EventRepository and caches GetByID and GetBySlug.
// The wrapped repository stays the source of truth: writes and Exists always go
// through to it, and cache failures are logged and treated as misses.
type eventRepository struct {
	next   domain.EventRepository
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewEventRepository(next domain.EventRepository, client Client, ttl time.Duration, logger *slog.Logger) domain.EventRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &eventRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func eventKey(id string) string {
	return eventKeyPrefix + id
}

func slugKey(slug string) string {
	return slugKeyPrefix + slug
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event, hook domain.EventPreCommit) error {
	if err := r.next.Create(ctx, e, hook); err != nil {
		return err
	}
	r.store(ctx, e)
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event, hook domain.EventPreCommit) error {
	if err := r.next.Update(ctx, e, hook); err != nil {
		return err
	}
	// the old slug key is left behind; lookups through it are checked in GetBySlug
	r.store(ctx, e)
	return nil
}

func (r *eventRepository) Exists(ctx context.Context, id string) (bool, error) {
	return r.next.Exists(ctx, id)
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	return r.next.List(ctx, params)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := r.load(ctx, id); ok {
		return e, nil
	}
	e, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, e)
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	id, err := r.client.Get(ctx, slugKey(slug)).Result()
	if err == nil {
		if e, ok := r.load(ctx, id); ok && e.Slug == slug {
			return e, nil
		}
		r.del(ctx, slugKey(slug))
	} else if !errors.Is(err, redis.Nil) {
		r.logger.WarnContext(ctx, "event cache read failed", "key", slugKey(slug), "err", err)
	}

	e, err := r.next.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	r.store(ctx, e)
	return e, nil
}

func (r *eventRepository) load(ctx context.Context, id string) (*domain.Event, bool) {
	raw, err := r.client.Get(ctx, eventKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WarnContext(ctx, "event cache read failed", "key", eventKey(id), "err", err)
		}
		return nil, false
	}
	var e domain.Event
	if err := json.Unmarshal(raw, &e); err != nil {
		r.logger.WarnContext(ctx, "event cache entry corrupt", "key", eventKey(id), "err", err)
		r.del(ctx, eventKey(id))
		return nil, false
	}
	return &e, true
}

func (r *eventRepository) store(ctx context.Context, e *domain.Event) {
	raw, err := json.Marshal(e)
	if err != nil {
		r.logger.WarnContext(ctx, "event cache encode failed", "event_id", e.ID, "err", err)
		return
	}
	if err := r.client.Set(ctx, eventKey(e.ID), raw, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "event cache write failed", "event_id", e.ID, "err", err)
		return
	}
	if err := r.client.Set(ctx, slugKey(e.Slug), e.ID, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "event cache write failed", "slug", e.Slug, "err", err)
	}
}

func (r *eventRepository) del(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.WarnContext(ctx, "event cache delete failed", "key", key, "err", err)
	}
}
