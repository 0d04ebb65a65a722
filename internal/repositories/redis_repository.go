package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"archbudget/internal/engine"
)

// ErrDraftNotFound is returned when no draft exists for the user (or it has
// already expired out of redis).
var ErrDraftNotFound = errors.New("draft not found")

type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) StoreSession(ctx context.Context, jti string, userID string) error {
	key := "session:" + jti
	ttl := 30 * 24 * time.Hour
	return r.rdb.Set(ctx, key, userID, ttl).Err()
}

func (r *RedisRepository) DeleteSession(ctx context.Context, jti string) error {
	key := "session:" + jti
	return r.rdb.Del(ctx, key).Err()
}

func (r *RedisRepository) Blacklist(ctx context.Context, jti string) error {
	key := "blacklist:" + jti
	ttl := 30 * 24 * time.Hour
	return r.rdb.Set(ctx, key, "true", ttl).Err()
}

func (r *RedisRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	key := "blacklist:" + jti
	exists, err := r.rdb.Exists(ctx, key).Result()
	return exists == 1, err
}

// CachePaidFlag keeps the payment gate off the database for the common case.
// Short TTL so a webhook landing on another instance converges quickly.
func (r *RedisRepository) CachePaidFlag(ctx context.Context, userID string, hasPaid bool) error {
	key := "paid:" + userID
	value := "0"
	if hasPaid {
		value = "1"
	}
	return r.rdb.Set(ctx, key, value, 5*time.Minute).Err()
}

// GetPaidFlag returns (flag, found, err).
func (r *RedisRepository) GetPaidFlag(ctx context.Context, userID string) (bool, bool, error) {
	key := "paid:" + userID
	value, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return value == "1", true, nil
}

func (r *RedisRepository) InvalidatePaidFlag(ctx context.Context, userID string) error {
	key := "paid:" + userID
	return r.rdb.Del(ctx, key).Err()
}

// StoreDraft keeps the in-progress calculator state restorable for the
// draft's TTL.
func (r *RedisRepository) StoreDraft(ctx context.Context, userID string, draft engine.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	key := "draft:" + userID
	return r.rdb.Set(ctx, key, payload, engine.DraftTTL).Err()
}

func (r *RedisRepository) GetDraft(ctx context.Context, userID string) (engine.Draft, error) {
	key := "draft:" + userID
	payload, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return engine.Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return engine.Draft{}, err
	}

	var draft engine.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return engine.Draft{}, err
	}
	return draft, nil
}

func (r *RedisRepository) DeleteDraft(ctx context.Context, userID string) error {
	key := "draft:" + userID
	return r.rdb.Del(ctx, key).Err()
}
