package dto

// TrackEventDTO 埋点上报请求体
// Value 取 any：仅当 JSON 值为数字时计入 total，其余类型静默忽略
type TrackEventDTO struct {
	Kind        string `json:"kind"`
	ItemID      string `json:"itemId"`
	Value       any    `json:"value,omitempty"`
	Timestamp   int64  `json:"timestamp"`
	Locale      string `json:"locale,omitempty"`
	ClientAgent string `json:"clientAgent,omitempty"`
}

// AckDTO 上报成功应答
type AckDTO struct {
	Success bool `json:"success"`
}

// ErrorDTO 错误应答
type ErrorDTO struct {
	Error string `json:"error"`
}
