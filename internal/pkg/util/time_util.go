package util

import "time"

// GetMidnight 取 UTC 当日零点
func GetMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey 将时间转为 UTC 日期串 YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// DayKeyFromMillis 将毫秒时间戳转为 UTC 日期串
func DayKeyFromMillis(ms int64) string {
	return DayKey(time.UnixMilli(ms))
}

// DaysAgo 计算日期串距今的自然日差，日期非法时返回 false
func DaysAgo(dateStr string, now time.Time) (int, bool) {
	d, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
	if err != nil {
		return 0, false
	}
	diff := int(GetMidnight(now).Sub(GetMidnight(d)).Hours() / 24)
	return diff, true
}

// WithinTrailingDays 判断日期是否落在最近 days 个自然日内，未来日期不算
func WithinTrailingDays(dateStr string, days int, now time.Time) bool {
	diff, ok := DaysAgo(dateStr, now)
	if !ok {
		return false
	}
	return diff >= 0 && diff <= days
}
