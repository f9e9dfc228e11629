package http

import (
	"context"

	"github.com/dkeye/Plaza/internal/adapters/signal"
	"github.com/dkeye/Plaza/internal/app/orch"
	"github.com/dkeye/Plaza/internal/config"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func SignalOptions(cfg *config.Config) signal.Options {
	return signal.Options{
		ReadLimit:  cfg.ReadLimit,
		PingPeriod: cfg.PingPeriod,
		PongWait:   cfg.PongWait,
		WriteWait:  cfg.WriteWait,
		SendBuffer: cfg.SendBuffer,
	}
}

// SetupRouter wires the REST API, the real-time endpoint and the static UI.
// ctx bounds every WebSocket connection and the limiter sweeper.
func SetupRouter(ctx context.Context, cfg *config.Config, orch *orch.Orchestrator) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 3600 * 24 * 7, HttpOnly: true})
	r.Use(sessions.Sessions("PlazaSessions", store))

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	limiter := NewCreateRateLimiter(cfg.CreateLimit, cfg.CreateInterval)
	go limiter.Run(ctx)
	h := NewHandlers(orch, limiter)
	ctrl := signal.NewSignalWSController(orch, SignalOptions(cfg))

	api := r.Group("/api")
	api.GET("/health", h.health)
	api.GET("/whoami", h.whoAmI)
	api.POST("/sessions", h.join)
	api.GET("/rooms", h.listRooms)
	api.POST("/rooms", h.createRoom)
	api.PATCH("/rooms/:roomId", h.updateRoom)
	api.DELETE("/rooms/:roomId", h.deleteRoom)
	api.GET("/rooms/:roomId/participants", h.participants)
	api.GET("/ws", func(c *gin.Context) {
		ctrl.HandleSignal(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")
	return r
}
