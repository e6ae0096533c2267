package kafka

import (
	"Arcadia/internal/api/config"
	"Arcadia/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	eventsConsumer sarama.ConsumerGroup
	eventsHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, trackSvc service.TrackService) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	eventsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaEventConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		eventsConsumer: eventsConsumer,
		eventsHandler:  NewTrackEventsHandler(trackSvc),
	}, nil
}

// Start 启动消费者，阻塞到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaEventConsumer.Topic
		log.Info("Track events consumer started", "topic", topic)
		for {
			if err := m.eventsConsumer.Consume(ctx, []string{topic}, m.eventsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.eventsConsumer.Close(); err != nil {
		log.Error("Failed to close events consumer", "err", err)
	}

	return nil
}
