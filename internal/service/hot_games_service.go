package service

import (
	"Arcadia/internal/api/config"
	"Arcadia/internal/api/dto"
	"Arcadia/internal/pkg/consts"
	"Arcadia/internal/pkg/minio"
	"Arcadia/internal/pkg/redis"
	"Arcadia/internal/pkg/util"
	"Arcadia/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

type HotGamesService interface {
	// RunScoring 全量扫描计数器，计算加权评分并产出 HOT 榜单。
	// 键枚举或计数器读取失败视为致命错误；单个键不可解析仅跳过。
	RunScoring(ctx context.Context) (*dto.HotListDTO, error)
	// GetLatest 读取最近一次评分结果，从未跑过时返回空榜单
	GetLatest(ctx context.Context) (*dto.HotListDTO, error)
}

type hotGamesServiceImpl struct {
	statsRepo repository.StatsRepo
	gameRepo  repository.GameRepo
	cfg       config.AnalyticsConfig
}

// NewHotGamesService gameRepo 可为 nil，此时跳过目录 HOT 标记同步
func NewHotGamesService(statsRepo repository.StatsRepo, gameRepo repository.GameRepo, cfg config.AnalyticsConfig) HotGamesService {
	return &hotGamesServiceImpl{
		statsRepo: statsRepo,
		gameRepo:  gameRepo,
		cfg:       cfg,
	}
}

// signalTotals 单个游戏在统计周期内的各信号累计值
type signalTotals struct {
	pv             int64
	cardClicks     int64
	gameStarts     int64
	timeSpentCount int64
	timeSpentTotal float64
}

func (s *hotGamesServiceImpl) RunScoring(ctx context.Context) (*dto.HotListDTO, error) {
	keys, err := s.statsRepo.ListStatKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stat keys: %w", err)
	}

	totals, skipped, err := s.aggregate(ctx, keys)
	if err != nil {
		return nil, err
	}

	details := s.score(totals)
	list := s.buildList(details)

	if err = s.writeArtifact(ctx, list); err != nil {
		return nil, err
	}

	s.syncCatalog(ctx, list)

	log.InfoContext(ctx, "hot games scoring done",
		"keys", len(keys),
		"skipped", skipped,
		"items", list.Total,
		"top", len(list.PopularItems))
	return list, nil
}

// aggregate 将周期内的计数器按 (游戏, 信号) 归并
func (s *hotGamesServiceImpl) aggregate(ctx context.Context, keys []string) (map[string]*signalTotals, int, error) {
	now := time.Now()
	totals := make(map[string]*signalTotals)
	skipped := 0

	for _, key := range keys {
		itemID, kind, date, ok := repository.ParseStatKey(key)
		if !ok {
			skipped++
			continue
		}
		if !util.WithinTrailingDays(date, s.cfg.HotPeriodDays, now) {
			skipped++
			continue
		}

		stat, err := s.statsRepo.Get(ctx, itemID, kind, date)
		if err != nil {
			return nil, 0, fmt.Errorf("read stat %s: %w", key, err)
		}
		if stat == nil || stat.Count == 0 {
			continue
		}

		t := totals[itemID]
		if t == nil {
			t = &signalTotals{}
			totals[itemID] = t
		}
		switch kind {
		case consts.EventPV:
			t.pv += stat.Count
		case consts.EventCardClick:
			t.cardClicks += stat.Count
		case consts.EventGameStart:
			t.gameStarts += stat.Count
		case consts.EventTimeSpent:
			t.timeSpentCount += stat.Count
			t.timeSpentTotal += stat.Total
		}
	}
	return totals, skipped, nil
}

// score 归一化加权打分，返回按分数降序、同分按 itemId 升序的全量明细
func (s *hotGamesServiceImpl) score(totals map[string]*signalTotals) []*dto.HotDetailDTO {
	// 各信号最大值兜底为 1，避免除零
	maxPV, maxClick, maxStart, maxAvg := 1.0, 1.0, 1.0, 1.0
	avgByItem := make(map[string]float64, len(totals))
	for itemID, t := range totals {
		avg := 0.0
		if t.timeSpentCount > 0 {
			avg = t.timeSpentTotal / float64(t.timeSpentCount)
		}
		avgByItem[itemID] = avg

		maxPV = math.Max(maxPV, float64(t.pv))
		maxClick = math.Max(maxClick, float64(t.cardClicks))
		maxStart = math.Max(maxStart, float64(t.gameStarts))
		maxAvg = math.Max(maxAvg, avg)
	}

	w := s.cfg.Weights
	details := make([]*dto.HotDetailDTO, 0, len(totals))
	for itemID, t := range totals {
		avg := avgByItem[itemID]
		score := (float64(t.pv)/maxPV*w.PV +
			float64(t.cardClicks)/maxClick*w.CardClick +
			float64(t.gameStarts)/maxStart*w.GameStart +
			avg/maxAvg*w.TimeSpent) * 100

		details = append(details, &dto.HotDetailDTO{
			ItemID: itemID,
			Score:  math.Round(score*100) / 100,
			Stats: dto.HotDetailStatsDTO{
				PV:            t.pv,
				Clicks:        t.cardClicks,
				SessionStarts: t.gameStarts,
				AvgTimeSpent:  int64(math.Round(avg)),
			},
		})
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].Score != details[j].Score {
			return details[i].Score > details[j].Score
		}
		return details[i].ItemID < details[j].ItemID
	})
	return details
}

func (s *hotGamesServiceImpl) buildList(details []*dto.HotDetailDTO) *dto.HotListDTO {
	top := details
	if len(top) > s.cfg.HotCount {
		top = top[:s.cfg.HotCount]
	}

	popular := make([]string, 0, len(top))
	for _, d := range top {
		popular = append(popular, d.ItemID)
	}

	return &dto.HotListDTO{
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Period:       fmt.Sprintf("%dd", s.cfg.HotPeriodDays),
		Total:        len(details),
		PopularItems: popular,
		Details:      top,
	}
}

// writeArtifact 落盘为本地 JSON 文件，同时写入 Redis 缓存与可选的 MinIO。
// 文件写失败视为致命；缓存与对象存储失败仅记日志。
func (s *hotGamesServiceImpl) writeArtifact(ctx context.Context, list *dto.HotListDTO) error {
	buf, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}

	if path := s.cfg.HotOutputPath; path != "" {
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err = os.WriteFile(path, buf, 0o644); err != nil {
			return fmt.Errorf("write artifact: %w", err)
		}
	}

	if err = redis.SetValue(ctx, consts.HotGamesLatestKey, buf); err != nil {
		log.ErrorContext(ctx, "cache hot list error", "err", err)
	}

	if minio.Client != nil {
		if err = minio.UploadJSON(ctx, "hot-games.json", buf); err != nil {
			log.ErrorContext(ctx, "upload hot list error", "err", err)
		}
	}
	return nil
}

// syncCatalog 将榜单回刷到游戏目录的 filter 标记，失败不影响制品产出
func (s *hotGamesServiceImpl) syncCatalog(ctx context.Context, list *dto.HotListDTO) {
	if s.gameRepo == nil {
		return
	}
	if err := s.gameRepo.UpdateHotFlags(ctx, list.PopularItems); err != nil {
		log.ErrorContext(ctx, "sync hot flags error", "err", err)
		return
	}
	log.InfoContext(ctx, "sync hot flags success", "count", len(list.PopularItems))
}

func (s *hotGamesServiceImpl) GetLatest(ctx context.Context) (*dto.HotListDTO, error) {
	raw, err := redis.GetValue(ctx, consts.HotGamesLatestKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return &dto.HotListDTO{
			Period:       fmt.Sprintf("%dd", s.cfg.HotPeriodDays),
			PopularItems: []string{},
			Details:      []*dto.HotDetailDTO{},
		}, nil
	}

	var list dto.HotListDTO
	if err = json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return &list, nil
}
