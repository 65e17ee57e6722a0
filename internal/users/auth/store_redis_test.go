// Copyright (c) 2026 Toma Beauty. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/users/auth"
)

func newTestCache(t *testing.T) (*auth.RedisSessionCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return auth.NewSessionCache(client), server
}

/*
TestSessionCache_RoundTrip stores and retrieves a session by token hash.
*/
func TestSessionCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)

	session := &auth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		TokenHash: "abc123",
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, cache.Set(context.Background(), session, time.Hour))

	got, err := cache.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, "user-1", got.UserID)
}

/*
TestSessionCache_MissAndTTL verifies a miss maps to NOT_FOUND and entries
expire with their TTL.
*/
func TestSessionCache_MissAndTTL(t *testing.T) {
	cache, server := newTestCache(t)

	_, err := cache.Get(context.Background(), "nope")
	require.Error(t, err)

	session := &auth.Session{ID: "sess-2", TokenHash: "ttl-key", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, cache.Set(context.Background(), session, time.Minute))

	server.FastForward(2 * time.Minute)

	_, err = cache.Get(context.Background(), "ttl-key")
	assert.Error(t, err)
}

/*
TestSessionCache_Delete evicts an entry.
*/
func TestSessionCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t)

	session := &auth.Session{ID: "sess-3", TokenHash: "gone", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, cache.Set(context.Background(), session, time.Hour))
	require.NoError(t, cache.Delete(context.Background(), "gone"))

	_, err := cache.Get(context.Background(), "gone")
	assert.Error(t, err)
}
