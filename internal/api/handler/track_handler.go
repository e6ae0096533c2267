package handler

import (
	"Arcadia/internal/api/dto"
	"Arcadia/internal/pkg/response"
	"Arcadia/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TrackHandler struct {
	trackSvc service.TrackService
}

func NewTrackHandler(trackSvc service.TrackService) *TrackHandler {
	return &TrackHandler{
		trackSvc: trackSvc,
	}
}

// Track 接收单条埋点事件，校验、限流（由中间件完成）后累加计数
func (h *TrackHandler) Track(c *gin.Context) {
	var evt dto.TrackEventDTO
	if err := c.ShouldBindJSON(&evt); err != nil {
		response.Fail(c, http.StatusBadRequest, service.ErrMalformedPayload.Error())
		return
	}

	if err := h.trackSvc.Ingest(c.Request.Context(), &evt); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AckDTO{Success: true})
}
