package service

import (
	"Arcadia/internal/api/config"
	"Arcadia/internal/api/dto"
	"Arcadia/internal/pkg/consts"
	"Arcadia/internal/pkg/util"
	"Arcadia/internal/repository"
	"context"
	"regexp"
	"time"
)

// slugPattern itemId 合法字符集，与存储键编码约束一致
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type TrackService interface {
	// Ingest 校验一条埋点事件并累加对应计数器，校验失败不产生任何写入
	Ingest(ctx context.Context, evt *dto.TrackEventDTO) error
}

type trackServiceImpl struct {
	statsRepo repository.StatsRepo
	cfg       config.AnalyticsConfig
}

func NewTrackService(statsRepo repository.StatsRepo, cfg config.AnalyticsConfig) TrackService {
	return &trackServiceImpl{
		statsRepo: statsRepo,
		cfg:       cfg,
	}
}

func (s *trackServiceImpl) Ingest(ctx context.Context, evt *dto.TrackEventDTO) error {
	if err := s.validate(evt); err != nil {
		return err
	}

	// 日期桶取事件时间戳的 UTC 自然日，而非服务器接收时间
	date := util.DayKeyFromMillis(evt.Timestamp)

	// value 仅在是合法数字时计入 total，其余类型静默忽略
	value := 0.0
	if f, ok := evt.Value.(float64); ok {
		value = f
	}

	return s.statsRepo.Increment(ctx, evt.ItemID, evt.Kind, date, value)
}

// validate 纯函数校验，不触发任何存储操作
func (s *trackServiceImpl) validate(evt *dto.TrackEventDTO) error {
	if evt.Kind == "" || evt.ItemID == "" || evt.Timestamp == 0 {
		return ErrMissingField
	}
	if !consts.IsValidEventKind(evt.Kind) {
		return ErrInvalidEventKind
	}
	if !slugPattern.MatchString(evt.ItemID) {
		return ErrInvalidItemID
	}

	// 与服务器时间偏差超过配置上限（默认 24h）的事件拒收，过去未来同限
	skew := time.Since(time.UnixMilli(evt.Timestamp))
	if skew < 0 {
		skew = -skew
	}
	if skew > time.Duration(s.cfg.TimestampSkewHours)*time.Hour {
		return ErrStaleTimestamp
	}
	return nil
}

// ValidItemID 暴露给查询侧复用同一套 itemId 校验规则
func ValidItemID(itemID string) bool {
	return slugPattern.MatchString(itemID)
}
