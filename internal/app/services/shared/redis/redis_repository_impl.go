package redis

import (
	"context"
	"errors"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Set stores strings as they are and everything else as JSON.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	var payload interface{} = value
	if _, isString := value.(string); !isString {
		jsonValue, err := json.Marshal(value)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		payload = jsonValue
	}

	err := r.client.Set(ctx, key, payload, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, exceptions.ErrRedisGet(err)
	}
	return ttl, nil
}
