package service

import (
	"errors"
	"net/http"
	"strings"

	"Arcadia/internal/pkg/consts"
)

var (
	ErrMissingField     = errors.New("missing required fields: kind, itemId, timestamp")
	ErrInvalidEventKind = errors.New("invalid event kind, valid kinds: " + strings.Join(consts.ValidEventKinds, ", "))
	ErrInvalidItemID    = errors.New("invalid itemId format")
	ErrStaleTimestamp   = errors.New("invalid or outdated timestamp")
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrMalformedPayload = errors.New("malformed request body")
)

// ErrorMap 业务错误到 HTTP 状态码的映射，未命中的错误一律按 500 处理
var ErrorMap = map[error]int{
	ErrMissingField:     http.StatusBadRequest,
	ErrInvalidEventKind: http.StatusBadRequest,
	ErrInvalidItemID:    http.StatusBadRequest,
	ErrStaleTimestamp:   http.StatusBadRequest,
	ErrMalformedPayload: http.StatusBadRequest,
	ErrRateLimited:      http.StatusTooManyRequests,
}
