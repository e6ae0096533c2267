package kafka

import (
	"Arcadia/internal/api/dto"
	"Arcadia/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// TrackEventsHandler 消费站点管道产生的服务端埋点事件。
// 服务端来源可信，不走 HTTP 侧限流，但校验规则完全一致。
type TrackEventsHandler struct {
	trackSvc service.TrackService
}

func NewTrackEventsHandler(trackSvc service.TrackService) *TrackEventsHandler {
	return &TrackEventsHandler{
		trackSvc: trackSvc,
	}
}

func (s *TrackEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("track events consumer setup")
	return nil
}

func (s *TrackEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("track events consumer cleanup")
	return nil
}

func (s *TrackEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("track events process batch error", "err", err)
		return err
	}
	return nil
}

func (s *TrackEventsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var evt dto.TrackEventDTO
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		// 坏消息直接丢弃，避免卡住整个分区
		log.WarnContext(ctx, "drop malformed track event", "offset", msg.Offset, "err", err)
		return nil
	}

	err := s.trackSvc.Ingest(ctx, &evt)
	if err == nil {
		return nil
	}
	if _, rejected := service.ErrorMap[err]; rejected {
		// 校验不通过属于脏数据，跳过不重试
		log.WarnContext(ctx, "drop invalid track event",
			"item", evt.ItemID, "kind", evt.Kind, "err", err)
		return nil
	}
	// 存储故障走重试
	return errors.Wrap(err, "ingest track event")
}
