package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "requestquote/pkg/errors"
)

// memCache is a map-backed stand-in for the redis repository. TTLs are
// ignored; expiry is exercised by removing keys directly.
type memCache struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newMemCache() *memCache { return &memCache{values: map[string]string{}} }

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = fmt.Sprint(value)
	return nil
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return v, nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *memCache) Incr(context.Context, string) (int64, error) { return 0, nil }

func (c *memCache) Expire(context.Context, string, time.Duration) (bool, error) { return true, nil }

func TestFormTokenService_IssueAndConsume(t *testing.T) {
	cache := newMemCache()
	svc := NewFormTokenService(cache, time.Hour, zap.NewNop())

	token, err := svc.Issue(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.Consume(context.Background(), token))

	// One-time: the second consume fails.
	err = svc.Consume(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormToken)
}

func TestFormTokenService_ConsumeUnknownToken(t *testing.T) {
	svc := NewFormTokenService(newMemCache(), time.Hour, zap.NewNop())

	err := svc.Consume(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormToken)
}

func TestFormTokenService_ConsumeEmptyToken(t *testing.T) {
	svc := NewFormTokenService(newMemCache(), time.Hour, zap.NewNop())

	err := svc.Consume(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormToken)
}

func TestFormTokenService_ExpiredToken(t *testing.T) {
	cache := newMemCache()
	svc := NewFormTokenService(cache, time.Hour, zap.NewNop())

	token, err := svc.Issue(context.Background())
	require.NoError(t, err)

	// Simulate TTL expiry by dropping the key.
	require.NoError(t, cache.Del(context.Background(), "requestquote:form_token:"+token))

	err = svc.Consume(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormToken)
}

func TestFormTokenService_IssueFailsWhenCacheDown(t *testing.T) {
	cache := newMemCache()
	cache.setErr = errors.New("connection refused")
	svc := NewFormTokenService(cache, time.Hour, zap.NewNop())

	_, err := svc.Issue(context.Background())
	assert.Error(t, err)
}

func TestFormTokenService_TokensAreUnique(t *testing.T) {
	svc := NewFormTokenService(newMemCache(), time.Hour, zap.NewNop())

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		token, err := svc.Issue(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
