package service

import (
	"Arcadia/internal/api/config"
	"Arcadia/internal/model"
	"Arcadia/internal/pkg/consts"
	"Arcadia/internal/pkg/redis"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type RateLimitService interface {
	// Allow 固定窗口限流，窗口内超过上限返回 false；存储故障返回 error
	Allow(ctx context.Context, clientAddr string) (bool, error)
}

type rateLimitServiceImpl struct {
	window time.Duration
	limit  int
}

func NewRateLimitService(cfg config.AnalyticsConfig) RateLimitService {
	return &rateLimitServiceImpl{
		window: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		limit:  cfg.RateLimitMaxRequests,
	}
}

// Allow 实现：读出窗口记录后写回，读写之间无原子性保障。
// 同一地址的并发突发可能少量超限，按软限流语义接受。
func (s *rateLimitServiceImpl) Allow(ctx context.Context, clientAddr string) (bool, error) {
	key := consts.RateLimitKeyPrefix + clientAddr
	now := time.Now().UnixMilli()

	raw, err := redis.GetValue(ctx, key)
	if err != nil {
		return false, err
	}

	var rec model.RateWindow
	if raw != "" {
		if err = json.Unmarshal([]byte(raw), &rec); err != nil {
			rec = model.RateWindow{}
		}
	}

	// 无记录或窗口已过期：开新窗口，TTL 即完整窗口长度
	if raw == "" || now-rec.WindowStartAt > s.window.Milliseconds() {
		rec = model.RateWindow{RequestCount: 1, WindowStartAt: now}
		buf, _ := json.Marshal(&rec)
		return true, redis.SetWithExpiration(ctx, key, buf, s.window)
	}

	if rec.RequestCount >= s.limit {
		// 拒绝时不写回，避免拒绝流量刷新窗口
		return false, nil
	}

	rec.RequestCount++
	remaining := s.window - time.Duration(now-rec.WindowStartAt)*time.Millisecond
	if remaining <= 0 {
		remaining = time.Second
	}
	buf, _ := json.Marshal(&rec)
	return true, redis.SetWithExpiration(ctx, key, buf, remaining)
}
