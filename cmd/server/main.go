package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nyaughh/verceiptify/internal/config"
	"github.com/Nyaughh/verceiptify/internal/repository"
	"github.com/Nyaughh/verceiptify/internal/service"
	"github.com/Nyaughh/verceiptify/internal/transport"
	"github.com/Nyaughh/verceiptify/internal/vercel"
	"go.uber.org/zap"
)

type App struct {
	Server     *http.Server
	Repository *repository.Repository
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	app := &App{}

	cfg, err := config.NewConfig()
	if err != nil {
		zap.L().Fatal("failed to get config", zap.Error(err))
	}

	repo, err := repository.NewRepository(cfg.PostgresCfg)
	if err != nil {
		zap.L().Fatal("failed to create repository", zap.Error(err))
	}
	app.Repository = repo

	client := vercel.NewClient(cfg.VercelAPIURL, cfg.UpstreamTimeout)
	svc := service.NewService(client, repo)

	zap.L().Info("starting server...", zap.String("port", cfg.HTTPPort))
	server := transport.StartServer(cfg, svc)
	app.Server = server

	app.gracefulShutdown()
}

func (app *App) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-quit
	zap.L().Info("shutdown signal received")

	const defaultShutdownTTL = time.Second * 10
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTTL)
	defer cancel()

	zap.L().Info("shutting down HTTP server...")
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("failed to shutdown HTTP server", zap.Error(err))
	}

	zap.L().Info("closing database connection...")
	app.Repository.CloseConnection()

	zap.L().Info("app shutdown completed")
}
