package consts

const (
	// StatsKeyPrefix 计数器键前缀，完整格式 stats:{itemId}:{kind}:{YYYY-MM-DD}
	StatsKeyPrefix = "stats:"
	// RateLimitKeyPrefix 限流窗口键前缀，完整格式 rate:{clientAddr}
	RateLimitKeyPrefix = "rate:"
	// HotGamesLatestKey 最近一次评分结果缓存
	HotGamesLatestKey = "hot:games:latest"
)
