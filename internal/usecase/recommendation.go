package usecase

import (
	"context"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

// PlanGenerator определяет интерфейс для получения текстового ответа от
// внешней генеративной модели (Groq API). Адаптер возвращает сырой текст,
// парсинг и валидация структуры — обязанность RecommendationUseCase.
type PlanGenerator interface {
	// Configured сообщает, задан ли API-ключ внешней модели.
	Configured() bool

	// CompleteJSON выполняет один запрос к модели с требованием
	// JSON-ответа и возвращает текст ответа.
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RecommendationUseCase определяет интерфейс генерации плана тренировок.
type RecommendationUseCase interface {
	// GetRecommendation строит промпт из недавней истории пользователя,
	// вызывает внешнюю модель и валидирует структуру ответа.
	//
	// forceRefresh прокидывается от клиента, но поведения не меняет:
	// кэша планов нет, каждый вызов заново обращается к модели.
	GetRecommendation(ctx context.Context, userID uuid.UUID, forceRefresh bool) (*domain.RecommendationPlan, error)
}
