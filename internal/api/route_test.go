package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Arcadia/internal/api/config"
	"Arcadia/internal/api/handler"
	"Arcadia/internal/pkg/logger"
	"Arcadia/internal/pkg/redis"
	"Arcadia/internal/repository"
	"Arcadia/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T, rateLimit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	config.Cfg = &config.Config{}
	logger.InitLogger()

	cfg := config.AnalyticsConfig{
		RetentionDays:          90,
		DefaultQueryDays:       7,
		MaxQueryDays:           90,
		TimestampSkewHours:     24,
		RateLimitWindowSeconds: 60,
		RateLimitMaxRequests:   rateLimit,
		HotPeriodDays:          7,
		HotCount:               10,
	}

	statsRepo := repository.NewStatsRepo(cfg.RetentionDays)
	group := &HandlersGroup{
		TrackHandler: handler.NewTrackHandler(service.NewTrackService(statsRepo, cfg)),
		StatsHandler: handler.NewStatsHandler(service.NewStatsService(statsRepo, cfg)),
		HotHandler:   handler.NewHotHandler(service.NewHotGamesService(statsRepo, nil, cfg)),
	}
	return SetupRouter(group, service.NewRateLimitService(cfg))
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func trackBody(kind, itemID string) string {
	return fmt.Sprintf(`{"kind":%q,"itemId":%q,"timestamp":%d}`, kind, itemID, time.Now().UnixMilli())
}

func TestPing(t *testing.T) {
	r := setupServer(t, 60)
	w := doRequest(r, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrackSuccess(t *testing.T) {
	r := setupServer(t, 60)
	w := doRequest(r, http.MethodPost, "/api/track", trackBody("pv", "snake-classic"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestTrackRejectsBadPayloads(t *testing.T) {
	r := setupServer(t, 60)

	cases := []struct {
		name string
		body string
	}{
		{"not json", "pv=1"},
		{"wrong field type", `{"kind":"pv","itemId":"a","timestamp":"yesterday"}`},
		{"missing fields", `{"kind":"pv"}`},
		{"unknown kind", trackBody("hover", "snake-classic")},
		{"bad slug", trackBody("pv", "no spaces")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/track", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEmpty(t, res["error"])
		})
	}
}

func TestTrackRateLimited(t *testing.T) {
	r := setupServer(t, 2)

	for i := 0; i < 2; i++ {
		w := doRequest(r, http.MethodPost, "/api/track", trackBody("pv", "snake-classic"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(r, http.MethodPost, "/api/track", trackBody("pv", "snake-classic"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())

	// 查询入口不受限流影响
	w = doRequest(r, http.MethodGet, "/api/stats/snake-classic", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := setupServer(t, 60)

	for i := 0; i < 3; i++ {
		w := doRequest(r, http.MethodPost, "/api/track", trackBody("pv", "tetris"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(r, http.MethodGet, "/api/stats/tetris?days=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		ItemID string `json:"itemId"`
		Days   int    `json:"days"`
		Stats  struct {
			PV *struct {
				Count int64 `json:"count"`
			} `json:"pv"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "tetris", res.ItemID)
	assert.Equal(t, 2, res.Days)
	require.NotNil(t, res.Stats.PV)
	assert.Equal(t, int64(3), res.Stats.PV.Count)
}

func TestStatsDefaultsAndErrors(t *testing.T) {
	r := setupServer(t, 60)

	// days 缺省落到默认窗口
	w := doRequest(r, http.MethodGet, "/api/stats/tetris", "")
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Days int `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 7, res.Days)

	// 非法 itemId 径直 400
	w = doRequest(r, http.MethodGet, "/api/stats/bad!slug", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHotEndpointEmpty(t *testing.T) {
	r := setupServer(t, 60)

	w := doRequest(r, http.MethodGet, "/api/hot", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Period       string   `json:"period"`
		PopularItems []string `json:"popularItems"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "7d", res.Period)
	assert.Empty(t, res.PopularItems)
}

func TestCORSPreflight(t *testing.T) {
	r := setupServer(t, 60)

	req := httptest.NewRequest(http.MethodOptions, "/api/track", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestDistinctClientsGetOwnWindows(t *testing.T) {
	r := setupServer(t, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(trackBody("pv", "a")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("CF-Connecting-IP", "1.1.1.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(trackBody("pv", "a")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("CF-Connecting-IP", "2.2.2.2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
