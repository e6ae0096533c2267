package repository

import (
	"Arcadia/internal/model"
	"Arcadia/internal/pkg/consts"
	"Arcadia/internal/pkg/redis"
	"context"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type StatsRepo interface {
	// Increment 对 (item, kind, date) 计数器做读改写累加，value 仅对 time_spent 有意义
	Increment(ctx context.Context, itemID, kind, date string, value float64) error
	// Get 读取单个计数器，不存在时返回 nil
	Get(ctx context.Context, itemID, kind, date string) (*model.ItemStat, error)
	// ListStatKeys 枚举全部计数器键，供评分任务扫描
	ListStatKeys(ctx context.Context) ([]string, error)
}

type statsRepoImpl struct {
	retention time.Duration
}

func NewStatsRepo(retentionDays int) StatsRepo {
	return &statsRepoImpl{retention: time.Duration(retentionDays) * 24 * time.Hour}
}

// StatKey 拼计数器键：stats:{itemId}:{kind}:{YYYY-MM-DD}
func StatKey(itemID, kind, date string) string {
	return consts.StatsKeyPrefix + itemID + ":" + kind + ":" + date
}

// ParseStatKey 逆向解析计数器键，格式不符时 ok 为 false
func ParseStatKey(key string) (itemID, kind, date string, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 4 || parts[0] != "stats" {
		return "", "", "", false
	}
	if parts[1] == "" || parts[2] == "" || parts[3] == "" {
		return "", "", "", false
	}
	return parts[1], parts[2], parts[3], true
}

// Increment 实现：读出现有值（缺省按零值），累加后带 90 天 TTL 写回。
// 读改写不具备原子性，并发下可能丢增量，计数按尽力而为语义使用。
func (r *statsRepoImpl) Increment(ctx context.Context, itemID, kind, date string, value float64) error {
	key := StatKey(itemID, kind, date)

	raw, err := redis.GetValue(ctx, key)
	if err != nil {
		return err
	}

	var stat model.ItemStat
	if raw != "" {
		if err = json.Unmarshal([]byte(raw), &stat); err != nil {
			// 脏数据按零值覆盖
			stat = model.ItemStat{}
		}
	}

	stat.Count++
	stat.Total += value
	stat.LastUpdatedAt = time.Now().UnixMilli()

	buf, err := json.Marshal(&stat)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, key, buf, r.retention)
}

func (r *statsRepoImpl) Get(ctx context.Context, itemID, kind, date string) (*model.ItemStat, error) {
	raw, err := redis.GetValue(ctx, StatKey(itemID, kind, date))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var stat model.ItemStat
	if err = json.Unmarshal([]byte(raw), &stat); err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *statsRepoImpl) ListStatKeys(ctx context.Context) ([]string, error) {
	return redis.ScanKeys(ctx, consts.StatsKeyPrefix+"*")
}
