package handler

import (
	"Arcadia/internal/pkg/response"
	"Arcadia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

// GetItemStats 查询单个游戏最近 N 天的聚合统计
func (h *StatsHandler) GetItemStats(c *gin.Context) {
	itemID := c.Param("item_id")

	// days 非法时传 0，由 service 落到默认窗口
	days := 0
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}

	res, err := h.statsSvc.GetItemStats(c.Request.Context(), itemID, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
