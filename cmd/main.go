// Package main wires the HTTP server for the lineup editor service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	handlers_fiber "github.com/ZachR72/Lineup-Maker/internal/transport/http/server/handlers-fiber"
	"github.com/ZachR72/Lineup-Maker/internal/usecase"

	"github.com/ZachR72/Lineup-Maker/config"
	"github.com/ZachR72/Lineup-Maker/internal/generator"
	"github.com/ZachR72/Lineup-Maker/internal/repository"
	"github.com/ZachR72/Lineup-Maker/internal/suggest"
	"github.com/ZachR72/Lineup-Maker/internal/transport/http/middleware"
	"github.com/ZachR72/Lineup-Maker/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var suggester suggest.Suggester = suggest.Disabled{}
	if cfg.Suggest.Enabled() {
		s, err := suggest.NewGemini(ctx, cfg.Suggest.APIKey, cfg.Suggest.Model, cfg.Suggest.Timeout)
		if err != nil {
			log.Warnw("suggestions disabled", "error", err)
		} else {
			suggester = s
		}
	}

	uc := usecase.New(log, ctx, repo, generator.NewRandom(), suggester,
		cfg.HTTP.RequestTimeout, cfg.Editor.AutosaveDelay)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
