package docstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each document as a JSON string under
// "<collection>:<key>". FindByField scans the collection's keyspace and
// filters client-side, which is fine at the scale this service targets.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Redis-backed implementation.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(collection, key string) string {
	return collection + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, collection, key string) ([]byte, error) {
	doc, err := s.client.Get(ctx, redisKey(collection, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, unavailable(err)
	}
	return doc, nil
}

func (s *RedisStore) Exists(ctx context.Context, collection, key string) (bool, error) {
	count, err := s.client.Exists(ctx, redisKey(collection, key)).Result()
	if err != nil {
		return false, unavailable(err)
	}
	return count > 0, nil
}

func (s *RedisStore) Insert(ctx context.Context, collection, key string, doc []byte) error {
	ok, err := s.client.SetNX(ctx, redisKey(collection, key), doc, 0).Result()
	if err != nil {
		return unavailable(err)
	}
	if !ok {
		return ErrKeyExists
	}
	return nil
}

func (s *RedisStore) Save(ctx context.Context, collection, key string, doc []byte) error {
	if err := s.client.Set(ctx, redisKey(collection, key), doc, 0).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, collection, key string) error {
	removed, err := s.client.Del(ctx, redisKey(collection, key)).Result()
	if err != nil {
		return unavailable(err)
	}
	if removed == 0 {
		return ErrKeyNotFound
	}
	return nil
}

func (s *RedisStore) FindByField(ctx context.Context, collection, field, value string) ([][]byte, error) {
	results := make([][]byte, 0)

	iter := s.client.Scan(ctx, 0, collection+":*", 100).Iterator()
	for iter.Next(ctx) {
		doc, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, unavailable(err)
		}
		if fieldEquals(doc, field, value) {
			results = append(results, doc)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, unavailable(err)
	}
	return results, nil
}
