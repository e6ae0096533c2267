package dto

// HotDetailStatsDTO 榜单条目各信号明细
type HotDetailStatsDTO struct {
	PV            int64 `json:"pv"`
	Clicks        int64 `json:"clicks"`
	SessionStarts int64 `json:"sessionStarts"`
	AvgTimeSpent  int64 `json:"avgTimeSpent"`
}

// HotDetailDTO 单个上榜条目
type HotDetailDTO struct {
	ItemID string            `json:"itemId"`
	Score  float64           `json:"score"`
	Stats  HotDetailStatsDTO `json:"stats"`
}

// HotListDTO 评分任务输出制品，亦即 GET /api/hot 应答
type HotListDTO struct {
	GeneratedAt  string          `json:"generatedAt"`
	Period       string          `json:"period"`
	Total        int             `json:"total"`
	PopularItems []string        `json:"popularItems"`
	Details      []*HotDetailDTO `json:"details"`
}
