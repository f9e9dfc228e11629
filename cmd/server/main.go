package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/dkeye/Plaza/internal/adapters/http"
	"github.com/dkeye/Plaza/internal/adapters/video"
	"github.com/dkeye/Plaza/internal/app"
	"github.com/dkeye/Plaza/internal/app/orch"
	"github.com/dkeye/Plaza/internal/config"
	"github.com/dkeye/Plaza/internal/domain"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}

	issuer, err := video.NewJWTIssuer([]byte(cfg.Video.SigningKey), cfg.Video.Issuer, cfg.Video.TTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build video token issuer")
	}

	orch := &orch.Orchestrator{
		Rooms:    app.NewRoomManager(cfg.MaxOccupancy),
		Registry: app.NewRegistry(),
		Policy:   app.SimplePolicy{},
		Video:    issuer,
	}

	if cfg.DemoRoomID != "" {
		if err := orch.Rooms.CreateDemoRoom(domain.RoomID(cfg.DemoRoomID)); err != nil {
			log.Fatal().Err(err).Str("room_id", cfg.DemoRoomID).Msg("failed to create demo room")
		}
	}

	r := router.SetupRouter(ctx, cfg, orch)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Plaza server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	orch.Shutdown()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
