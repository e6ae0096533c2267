package kafka

import (
	"context"
	"fmt"
	"testing"
	"time"

	"Arcadia/internal/api/config"
	"Arcadia/internal/pkg/redis"
	"Arcadia/internal/repository"
	"Arcadia/internal/service"

	"github.com/IBM/sarama"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) (*TrackEventsHandler, repository.StatsRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	repo := repository.NewStatsRepo(90)
	svc := service.NewTrackService(repo, config.AnalyticsConfig{
		RetentionDays:      90,
		TimestampSkewHours: 24,
	})
	return NewTrackEventsHandler(svc), repo, mr
}

func eventMessage(body string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{
		Topic: "arcadia.track.events",
		Value: []byte(body),
	}
}

func TestLogicIngestsValidEvent(t *testing.T) {
	h, repo, _ := setupHandler(t)
	ctx := context.Background()

	body := fmt.Sprintf(`{"kind":"game_start","itemId":"tetris","timestamp":%d}`, time.Now().UnixMilli())
	require.NoError(t, h.logic(ctx, eventMessage(body)))

	date := time.Now().UTC().Format(time.DateOnly)
	stat, err := repo.Get(ctx, "tetris", "game_start", date)
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.Equal(t, int64(1), stat.Count)
}

func TestLogicDropsMalformedMessage(t *testing.T) {
	h, _, mr := setupHandler(t)

	// 解析失败不能返回 error，否则会无限重试卡住分区
	assert.NoError(t, h.logic(context.Background(), eventMessage("not json at all")))
	assert.Empty(t, mr.Keys())
}

func TestLogicDropsInvalidEvent(t *testing.T) {
	h, _, mr := setupHandler(t)
	ctx := context.Background()

	for _, body := range []string{
		`{"kind":"hover","itemId":"tetris","timestamp":1}`,
		fmt.Sprintf(`{"kind":"pv","itemId":"bad slug","timestamp":%d}`, time.Now().UnixMilli()),
		`{"kind":"pv"}`,
	} {
		assert.NoError(t, h.logic(ctx, eventMessage(body)), "body %s", body)
	}
	assert.Empty(t, mr.Keys())
}

func TestLogicReturnsErrorOnStorageFailure(t *testing.T) {
	h, _, mr := setupHandler(t)
	mr.Close()

	body := fmt.Sprintf(`{"kind":"pv","itemId":"tetris","timestamp":%d}`, time.Now().UnixMilli())
	assert.Error(t, h.logic(context.Background(), eventMessage(body)))
}
