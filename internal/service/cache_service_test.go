package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string, interface{}) error {
	return errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenCache) DeleteByPattern(context.Context, string) error {
	return errors.New("connection refused")
}

type countingMetrics struct {
	hits, misses, writes int
}

func (m *countingMetrics) RecordCacheOperation(hit bool, _ time.Duration) {
	if hit {
		m.hits++
		return
	}
	m.misses++
}

func (m *countingMetrics) ObserveCacheWrite(time.Duration) { m.writes++ }

func TestCacheServiceDisabled(t *testing.T) {
	var svc *CacheService
	assert.False(t, svc.Enabled())

	hit, err := svc.Get(context.Background(), "k", &[]string{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, svc.Set(context.Background(), "k", 1, 0))
	assert.NoError(t, svc.Invalidate(context.Background(), "*"))

	assert.False(t, NewCacheService(nil, nil, 0, nil).Enabled())
}

func TestCacheServiceRecordsMetrics(t *testing.T) {
	metrics := &countingMetrics{}
	store := newMemoryCache()
	svc := NewCacheService(store, metrics, time.Minute, nil)
	ctx := context.Background()

	hit, err := svc.Get(ctx, "missing", &[]string{})
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "present", []string{"a"}, 0))
	hit, err = svc.Get(ctx, "present", &[]string{})
	require.NoError(t, err)
	assert.True(t, hit)

	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
	assert.Equal(t, 1, metrics.writes)
}

func TestCacheServiceSurfacesStoreFailures(t *testing.T) {
	svc := NewCacheService(brokenCache{}, nil, time.Minute, nil)
	ctx := context.Background()

	hit, err := svc.Get(ctx, "k", &[]string{})
	assert.False(t, hit)
	assert.Error(t, err)
	assert.Error(t, svc.Set(ctx, "k", 1, 0))
	assert.Error(t, svc.Invalidate(ctx, "*"))
}
