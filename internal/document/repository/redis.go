package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gogotex/docstore/internal/document"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each document as JSON under "<prefix>doc:<id>" and tracks
// the known ids in the set "<prefix>index".
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store. Prefix may be empty.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "document:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + "doc:" + id
}

func (r *RedisStore) indexKey() string {
	return r.prefix + "index"
}

func (r *RedisStore) Get(ctx context.Context, id string) (*document.Document, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", id, err)
	}
	var d document.Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return &d, nil
}

func (r *RedisStore) Put(ctx context.Context, d *document.Document) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.key(d.ID), b, 0)
		p.SAdd(ctx, r.indexKey(), d.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put %s: %w", d.ID, err)
	}
	return nil
}

func (r *RedisStore) All(ctx context.Context) ([]*document.Document, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis index: %w", err)
	}
	out := make([]*document.Document, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}
	for i, v := range vals {
		// the value may have been removed outside this store
		s, ok := v.(string)
		if !ok {
			continue
		}
		var d document.Document
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			return nil, fmt.Errorf("decode %s: %w", ids[i], err)
		}
		out = append(out, &d)
	}
	return out, nil
}
