package dto

// KindStatDTO 单事件类型在查询窗口内的聚合值
type KindStatDTO struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// StatsBodyDTO 各事件类型聚合，窗口内无数据的类型省略
type StatsBodyDTO struct {
	PV           *KindStatDTO `json:"pv,omitempty"`
	CardClick    *KindStatDTO `json:"card_click,omitempty"`
	GameStart    *KindStatDTO `json:"game_start,omitempty"`
	TimeSpent    *KindStatDTO `json:"time_spent,omitempty"`
	AvgTimeSpent *float64     `json:"avgTimeSpent,omitempty"`
}

// ItemStatsDTO GET /api/stats/:item_id 应答
type ItemStatsDTO struct {
	ItemID string       `json:"itemId"`
	Days   int          `json:"days"`
	Stats  StatsBodyDTO `json:"stats"`
}
