package handler

import (
	"Arcadia/internal/pkg/response"
	"Arcadia/internal/service"

	"github.com/gin-gonic/gin"
)

type HotHandler struct {
	hotSvc service.HotGamesService
}

func NewHotHandler(hotSvc service.HotGamesService) *HotHandler {
	return &HotHandler{
		hotSvc: hotSvc,
	}
}

// GetHotList 返回最近一次评分产出的 HOT 榜单
func (h *HotHandler) GetHotList(c *gin.Context) {
	list, err := h.hotSvc.GetLatest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
