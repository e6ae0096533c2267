package service

import (
	"Arcadia/internal/api/config"
	"Arcadia/internal/api/dto"
	"Arcadia/internal/pkg/consts"
	"Arcadia/internal/pkg/util"
	"Arcadia/internal/repository"
	"context"
	"time"
)

type StatsService interface {
	// GetItemStats 聚合最近 days 个自然日的计数，days<1 取默认值并按上限截断
	GetItemStats(ctx context.Context, itemID string, days int) (*dto.ItemStatsDTO, error)
}

type statsServiceImpl struct {
	statsRepo repository.StatsRepo
	cfg       config.AnalyticsConfig
}

func NewStatsService(statsRepo repository.StatsRepo, cfg config.AnalyticsConfig) StatsService {
	return &statsServiceImpl{
		statsRepo: statsRepo,
		cfg:       cfg,
	}
}

func (s *statsServiceImpl) GetItemStats(ctx context.Context, itemID string, days int) (*dto.ItemStatsDTO, error) {
	if !ValidItemID(itemID) {
		return nil, ErrInvalidItemID
	}

	if days < 1 {
		days = s.cfg.DefaultQueryDays
	}
	if days > s.cfg.MaxQueryDays {
		days = s.cfg.MaxQueryDays
	}

	now := time.Now()
	agg := make(map[string]*dto.KindStatDTO, len(consts.ValidEventKinds))

	// 窗口为今天起回溯 days-1 天，每个 (kind, day) 一次点查，缺失按零处理
	for i := 0; i < days; i++ {
		date := util.DayKey(now.AddDate(0, 0, -i))
		for _, kind := range consts.ValidEventKinds {
			stat, err := s.statsRepo.Get(ctx, itemID, kind, date)
			if err != nil {
				return nil, err
			}
			if stat == nil {
				continue
			}
			k := agg[kind]
			if k == nil {
				k = &dto.KindStatDTO{}
				agg[kind] = k
			}
			k.Count += stat.Count
			k.Total += stat.Total
		}
	}

	res := &dto.ItemStatsDTO{
		ItemID: itemID,
		Days:   days,
		Stats: dto.StatsBodyDTO{
			PV:        agg[consts.EventPV],
			CardClick: agg[consts.EventCardClick],
			GameStart: agg[consts.EventGameStart],
			TimeSpent: agg[consts.EventTimeSpent],
		},
	}

	if ts := agg[consts.EventTimeSpent]; ts != nil && ts.Count > 0 {
		avg := ts.Total / float64(ts.Count)
		res.Stats.AvgTimeSpent = &avg
	}

	return res, nil
}
