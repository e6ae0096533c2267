package api

import (
	"Arcadia/internal/api/middleware"
	"Arcadia/internal/pkg/logger"
	"Arcadia/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, limiter service.RateLimitService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & CORS & Logger
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		// 写入口带限流，查询入口不限
		apiGroup.POST("/track", middleware.RateLimitMiddleware(limiter), group.TrackHandler.Track)
		apiGroup.GET("/stats/:item_id", group.StatsHandler.GetItemStats)
		apiGroup.GET("/hot", group.HotHandler.GetHotList)
	}

	return r
}
