package main

import (
	"Arcadia/internal/api/config"
	"Arcadia/internal/pkg/database"
	"Arcadia/internal/pkg/logger"
	"Arcadia/internal/pkg/minio"
	"Arcadia/internal/pkg/redis"
	"Arcadia/internal/repository"
	"Arcadia/internal/service"
	"context"
	log "log/slog"
	"os"

	"github.com/google/uuid"
)

// 热门游戏评分的独立入口，供手动触发或外部调度器使用
func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	cfg := config.Cfg

	logger.InitLogger()

	if err := redis.InitRedis(cfg.Redis); err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		os.Exit(1)
	}

	if err := minio.Init(); err != nil {
		log.Error("Fatal error: failed to initialize MinIO", "err", err)
		os.Exit(1)
	}

	var gameRepo repository.GameRepo
	if cfg.DB.DSN != "" {
		dbCfg := cfg.DB
		db, err := database.NewGormDB(&dbCfg)
		if err != nil {
			log.Error("Fatal error: failed to create database connection", "err", err)
			os.Exit(1)
		}
		gameRepo = repository.NewGameRepo(db)
	}

	statsRepo := repository.NewStatsRepo(cfg.Analytics.RetentionDays)
	hotSvc := service.NewHotGamesService(statsRepo, gameRepo, cfg.Analytics)

	ctx := context.WithValue(context.Background(), logger.TraceIDKey, "cli-hot-"+uuid.NewString())
	if _, err := hotSvc.RunScoring(ctx); err != nil {
		log.ErrorContext(ctx, "Hot games scoring failed", "err", err)
		os.Exit(1)
	}
	log.InfoContext(ctx, "Hot games scoring finished.")
}
