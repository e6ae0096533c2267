package wire

import (
	"Arcadia/internal/api"
	"Arcadia/internal/api/config"
	"Arcadia/internal/api/handler"
	"Arcadia/internal/job"
	"Arcadia/internal/pkg/cron"
	"Arcadia/internal/pkg/kafka"
	"Arcadia/internal/repository"
	"Arcadia/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	statsRepo := repository.NewStatsRepo(cfg.Analytics.RetentionDays)

	var gameRepo repository.GameRepo
	if db != nil {
		gameRepo = repository.NewGameRepo(db)
	}

	trackSvc := service.NewTrackService(statsRepo, cfg.Analytics)
	statsSvc := service.NewStatsService(statsRepo, cfg.Analytics)
	limiter := service.NewRateLimitService(cfg.Analytics)
	hotSvc := service.NewHotGamesService(statsRepo, gameRepo, cfg.Analytics)

	handlers := &api.HandlersGroup{
		TrackHandler: handler.NewTrackHandler(trackSvc),
		StatsHandler: handler.NewStatsHandler(statsSvc),
		HotHandler:   handler.NewHotHandler(hotSvc),
	}

	router := api.SetupRouter(handlers, limiter)

	cronMgr := cron.NewCronManager(job.NewHotGamesJob(hotSvc), cfg.Analytics.HotCronSpec)

	var kafkaMgr *kafka.ConsumerManager
	if len(cfg.Kafka.Brokers) > 0 {
		mgr, err := kafka.NewConsumerManager(cfg, trackSvc)
		if err != nil {
			return nil, err
		}
		kafkaMgr = mgr
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
