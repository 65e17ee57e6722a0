// Copyright (c) 2026 Toma Beauty. All rights reserved.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/constants"
)

// RedisSessionCache is a TTL-bounded lookaside cache in front of the
// session table, keyed by refresh-token hash. Losing the cache is safe:
// every miss falls through to Postgres.
type RedisSessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func (cache *RedisSessionCache) Get(context context.Context, tokenHash string) (*Session, error) {
	payload, err := cache.client.Get(context, sessionKey(tokenHash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Session")
	}
	if err != nil {
		return nil, fmt.Errorf("redis: session get failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		// A corrupt entry behaves as a miss; the database copy is the truth.
		return nil, apperr.NotFound("Session")
	}
	return session, nil
}

func (cache *RedisSessionCache) Set(context context.Context, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis: session marshal failed: %w", err)
	}

	if err := cache.client.Set(context, sessionKey(session.TokenHash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: session set failed: %w", err)
	}
	return nil
}

func (cache *RedisSessionCache) Delete(context context.Context, tokenHash string) error {
	if err := cache.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis: session delete failed: %w", err)
	}
	return nil
}
