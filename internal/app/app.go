package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoFitLab/FitCoach/internal/config"
	"github.com/GoFitLab/FitCoach/internal/database/client"
	"github.com/GoFitLab/FitCoach/internal/handler"
)

type App struct {
	Config   *config.Config
	logger   *slog.Logger
	dbClient *client.Client
	handler  *handler.Handler
	verifier handler.TokenVerifier
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	h *handler.Handler,
	verifier handler.TokenVerifier,
) *App {
	return &App{
		Config:   cfg,
		logger:   logger,
		dbClient: dbClient,
		handler:  h,
		verifier: verifier,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.Config, a.handler, a.verifier, a.logger); err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if err := a.Shutdown(); err != nil {
		a.logger.Error("shutdown error", "error", err)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	return nil
}
