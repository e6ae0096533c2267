package service

import (
	"context"
	"testing"
	"time"

	"Arcadia/internal/pkg/util"
	"Arcadia/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStat(t *testing.T, repo repository.StatsRepo, itemID, kind string, daysAgo, count int, value float64) {
	t.Helper()
	date := util.DayKey(time.Now().AddDate(0, 0, -daysAgo))
	for i := 0; i < count; i++ {
		require.NoError(t, repo.Increment(context.Background(), itemID, kind, date, value))
	}
}

func TestGetItemStatsWindow(t *testing.T) {
	setupTestRedis(t)
	repo := repository.NewStatsRepo(90)
	svc := NewStatsService(repo, testAnalyticsConfig())

	seedStat(t, repo, "tetris", "pv", 0, 3, 0)
	seedStat(t, repo, "tetris", "pv", 1, 2, 0)
	// 窗口之外，不应计入
	seedStat(t, repo, "tetris", "pv", 2, 10, 0)

	res, err := svc.GetItemStats(context.Background(), "tetris", 2)
	require.NoError(t, err)
	assert.Equal(t, "tetris", res.ItemID)
	assert.Equal(t, 2, res.Days)
	require.NotNil(t, res.Stats.PV)
	assert.Equal(t, int64(5), res.Stats.PV.Count)
}

func TestGetItemStatsOmitsEmptyKinds(t *testing.T) {
	setupTestRedis(t)
	repo := repository.NewStatsRepo(90)
	svc := NewStatsService(repo, testAnalyticsConfig())

	seedStat(t, repo, "tetris", "pv", 0, 1, 0)

	res, err := svc.GetItemStats(context.Background(), "tetris", 7)
	require.NoError(t, err)
	assert.NotNil(t, res.Stats.PV)
	assert.Nil(t, res.Stats.CardClick)
	assert.Nil(t, res.Stats.GameStart)
	assert.Nil(t, res.Stats.TimeSpent)
	assert.Nil(t, res.Stats.AvgTimeSpent)
}

func TestGetItemStatsAverageTimeSpent(t *testing.T) {
	setupTestRedis(t)
	repo := repository.NewStatsRepo(90)
	svc := NewStatsService(repo, testAnalyticsConfig())

	seedStat(t, repo, "tetris", "time_spent", 0, 4, 25)

	res, err := svc.GetItemStats(context.Background(), "tetris", 7)
	require.NoError(t, err)
	require.NotNil(t, res.Stats.TimeSpent)
	assert.Equal(t, int64(4), res.Stats.TimeSpent.Count)
	assert.InDelta(t, 100.0, res.Stats.TimeSpent.Total, 1e-9)
	require.NotNil(t, res.Stats.AvgTimeSpent)
	assert.InDelta(t, 25.0, *res.Stats.AvgTimeSpent, 1e-9)
}

func TestGetItemStatsClampsDays(t *testing.T) {
	setupTestRedis(t)
	repo := repository.NewStatsRepo(90)
	svc := NewStatsService(repo, testAnalyticsConfig())
	ctx := context.Background()

	res, err := svc.GetItemStats(ctx, "tetris", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Days)

	res, err = svc.GetItemStats(ctx, "tetris", -5)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Days)

	res, err = svc.GetItemStats(ctx, "tetris", 500)
	require.NoError(t, err)
	assert.Equal(t, 90, res.Days)
}

func TestGetItemStatsRejectsBadSlug(t *testing.T) {
	setupTestRedis(t)
	svc := NewStatsService(repository.NewStatsRepo(90), testAnalyticsConfig())

	_, err := svc.GetItemStats(context.Background(), "bad slug!", 7)
	assert.ErrorIs(t, err, ErrInvalidItemID)
}
