package service

import (
	"context"
	"testing"
	"time"

	"Arcadia/internal/api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowUpToLimit(t *testing.T) {
	setupTestRedis(t)
	cfg := testAnalyticsConfig()
	cfg.RateLimitMaxRequests = 3
	svc := NewRateLimitService(cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := svc.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := svc.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllowIsPerAddress(t *testing.T) {
	setupTestRedis(t)
	cfg := testAnalyticsConfig()
	cfg.RateLimitMaxRequests = 1
	svc := NewRateLimitService(cfg)
	ctx := context.Background()

	allowed, err := svc.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = svc.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, allowed)

	// 其他地址不受影响
	allowed, err = svc.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestWindowResetsAfterExpiry(t *testing.T) {
	mr := setupTestRedis(t)
	cfg := testAnalyticsConfig()
	cfg.RateLimitMaxRequests = 2
	svc := NewRateLimitService(cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := svc.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := svc.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, allowed)

	mr.FastForward(61 * time.Second)

	allowed, err = svc.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestDeniedRequestsDoNotExtendWindow(t *testing.T) {
	mr := setupTestRedis(t)
	svc := NewRateLimitService(config.AnalyticsConfig{
		RateLimitWindowSeconds: 60,
		RateLimitMaxRequests:   1,
	})
	ctx := context.Background()

	allowed, err := svc.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, allowed)

	ttlBefore := mr.TTL("rate:1.2.3.4")
	for i := 0; i < 5; i++ {
		allowed, err = svc.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.False(t, allowed)
	}
	assert.Equal(t, ttlBefore, mr.TTL("rate:1.2.3.4"))
}
