package job

import (
	"Arcadia/internal/pkg/logger"
	"Arcadia/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// HotGamesJob 定时评分任务，包装 HotGamesService 供 cron 调度
type HotGamesJob struct {
	hotSvc service.HotGamesService
}

func NewHotGamesJob(hotSvc service.HotGamesService) *HotGamesJob {
	return &HotGamesJob{
		hotSvc: hotSvc,
	}
}

func (s *HotGamesJob) Run() {
	traceID := "job-hot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	list, err := s.hotSvc.RunScoring(ctx)
	if err != nil {
		log.ErrorContext(ctx, "hot games scoring error", "err", err)
		return
	}

	log.InfoContext(ctx, "hot games job success",
		"total", list.Total,
		"popular", len(list.PopularItems))
}
