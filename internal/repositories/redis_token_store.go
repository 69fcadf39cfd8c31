package repository

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

const tokenKeyPrefix = "onetime:"

type RedisTokenStore struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client rueidis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisTokenStore) Save(ctx context.Context, code, userID string) error {
	cmd := r.client.B().Set().Key(tokenKeyPrefix + code).Value(userID).Ex(r.ttl).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisTokenStore) Peek(ctx context.Context, code string) (string, error) {
	cmd := r.client.B().Get().Key(tokenKeyPrefix + code).Build()
	result := r.client.Do(ctx, cmd)

	userID, err := result.ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", ErrTokenNotFound
		}
		return "", err
	}

	return userID, nil
}

func (r *RedisTokenStore) Consume(ctx context.Context, code string) (string, error) {
	cmd := r.client.B().Getdel().Key(tokenKeyPrefix + code).Build()
	result := r.client.Do(ctx, cmd)

	userID, err := result.ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", ErrTokenNotFound
		}
		return "", err
	}

	return userID, nil
}
