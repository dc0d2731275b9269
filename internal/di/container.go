package di

import (
	"github.com/GoFitLab/FitCoach/internal/adapter/groq"
	"github.com/GoFitLab/FitCoach/internal/app"
	"github.com/GoFitLab/FitCoach/internal/auth"
	"github.com/GoFitLab/FitCoach/internal/config"
	"github.com/GoFitLab/FitCoach/internal/database/client"
	"github.com/GoFitLab/FitCoach/internal/database/storage"
	"github.com/GoFitLab/FitCoach/internal/handler"
	"github.com/GoFitLab/FitCoach/internal/logger"
	"github.com/GoFitLab/FitCoach/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx + gorm поверх одного пула)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	workoutStorage := storage.NewWorkoutStorage(dbClient.Gorm, slogger)

	// 4. Криптографические возможности: подпись токенов и хэширование паролей
	tokenManager := auth.NewTokenManager(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher()

	// 5. Клиент внешней генеративной модели. Один на процесс,
	// дальше передается только по ссылке.
	groqClient := groq.NewClient(cfg)
	if !groqClient.Configured() {
		slogger.Warn("GROQ_API_KEY is not set, ai recommendations will fail until configured")
	}

	// 6. Инициализация бизнес-логики (usecases)
	authUseCase := usecase.NewAuthUseCase(userStorage, hasher, tokenManager, slogger)
	workoutUseCase := usecase.NewWorkoutUseCase(workoutStorage, slogger)
	recommendationUseCase := usecase.NewRecommendationUseCase(workoutStorage, groqClient, slogger)

	// 7. Сборка HTTP-слоя и итогового приложения
	h := handler.NewHandler(authUseCase, workoutUseCase, recommendationUseCase, slogger)

	application := app.NewApp(cfg, slogger, dbClient, h, tokenManager)

	slogger.Info("all dependencies initialized")
	return application, nil
}
