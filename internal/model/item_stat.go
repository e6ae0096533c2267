package model

// ItemStat 单个计数器取值，对应键 stats:{itemId}:{kind}:{YYYY-MM-DD}
type ItemStat struct {
	Count         int64   `json:"count"`
	Total         float64 `json:"total"`
	LastUpdatedAt int64   `json:"lastUpdatedAt"`
}

// RateWindow 限流窗口记录，对应键 rate:{clientAddr}
type RateWindow struct {
	RequestCount  int   `json:"requestCount"`
	WindowStartAt int64 `json:"windowStartAt"`
}
