package repositoryImp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"cropcare/pkg/session/repository"
)

const redisPrefix = "cropcare:session:"

// RedisStore keeps sessions as JSON values with a native TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects and pings the server before returning.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

var _ repository.SessionStore = (*RedisStore)(nil)

func (s *RedisStore) Create(ctx context.Context, d repository.Data) (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := s.client.Set(ctx, redisPrefix+id, raw, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*repository.Data, error) {
	if id == "" {
		return nil, nil
	}
	val, err := s.client.Get(ctx, redisPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d repository.Data
	if err := json.Unmarshal(val, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisPrefix+id).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error { return s.client.Close() }
