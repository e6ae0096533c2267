package middleware

import (
	"Arcadia/internal/pkg/response"
	"Arcadia/internal/service"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware 按客户端地址做固定窗口限流，仅挂在写入口上
func RateLimitMiddleware(limiter service.RateLimitService) gin.HandlerFunc {
	return func(c *gin.Context) {
		addr := ClientAddr(c)

		allowed, err := limiter.Allow(c.Request.Context(), addr)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "rate limit check error", "addr", addr, "err", err)
			response.Fail(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if !allowed {
			response.Fail(c, http.StatusTooManyRequests, service.ErrRateLimited.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClientAddr 取客户端地址：优先可信代理头，其次 X-Forwarded-For 首项
func ClientAddr(c *gin.Context) string {
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return "unknown"
}
