package repository

import (
	"Arcadia/internal/model"
	"Arcadia/internal/pkg/consts"
	"context"

	"gorm.io/gorm"
)

type GameRepo interface {
	// UpdateHotFlags 按榜单刷新 HOT 标记：上榜置 hot，落榜清空，new 标记保留
	UpdateHotFlags(ctx context.Context, hotSlugs []string) error
}

type gameRepoImpl struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return &gameRepoImpl{db: db}
}

func (r *gameRepoImpl) UpdateHotFlags(ctx context.Context, hotSlugs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reset := tx.Model(&model.Game{}).Where("filter = ?", consts.GameFilterHot)
		if len(hotSlugs) > 0 {
			reset = reset.Where("slug NOT IN ?", hotSlugs)
		}
		if err := reset.Update("filter", "").Error; err != nil {
			return err
		}

		if len(hotSlugs) == 0 {
			return nil
		}
		return tx.Model(&model.Game{}).
			Where("slug IN ?", hotSlugs).
			Update("filter", consts.GameFilterHot).Error
	})
}
