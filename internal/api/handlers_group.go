package api

import "Arcadia/internal/api/handler"

// HandlersGroup 路由装配所需的全部 Handler
type HandlersGroup struct {
	TrackHandler *handler.TrackHandler
	StatsHandler *handler.StatsHandler
	HotHandler   *handler.HotHandler
}
