package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/service"
)

func NewRouter(svc *service.SeatingService, cfg *config.Config, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware(log))
	r.Use(RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	RegisterHandlers(r, svc, cfg.Event, log)
	return r
}
