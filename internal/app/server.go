package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoFitLab/FitCoach/internal/config"
	"github.com/GoFitLab/FitCoach/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// runServer запускает HTTP-сервер и блокируется до отмены ctx,
// после чего выполняет graceful shutdown.
func runServer(
	ctx context.Context,
	cfg *config.Config,
	h *handler.Handler,
	verifier handler.TokenVerifier,
	logger *slog.Logger,
) error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger(logger))

	allowedOrigins := []string{"http://localhost:5000", "http://localhost:3000"}
	if cfg.AllowedOrigin != "" {
		allowedOrigins = []string{cfg.AllowedOrigin}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		// Защищенные маршруты: userID всегда из проверенного токена
		r.Group(func(r chi.Router) {
			r.Use(handler.Authenticator(verifier, logger))
			r.Get("/workouts", h.ListWorkouts)
			r.Post("/workouts", h.AddWorkout)
			r.Get("/ai-recommendation", h.GetRecommendation)
		})

		r.NotFound(h.APINotFound)
	})

	// Все остальные пути отдают SPA-бандл (клиентская маршрутизация)
	r.NotFound(handler.SPAHandler(cfg.StaticDir))

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
