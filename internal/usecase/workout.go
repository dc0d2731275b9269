package usecase

import (
	"context"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

// WorkoutUseCase определяет интерфейс бизнес-логики журнала тренировок.
// userID всегда берется из проверенного токена, никогда из тела запроса.
type WorkoutUseCase interface {
	// AddWorkout валидирует входные данные и сохраняет запись тренировки.
	AddWorkout(ctx context.Context, userID uuid.UUID, input domain.NewWorkoutInput) (*domain.Workout, error)

	// ListWorkouts возвращает тренировки пользователя от новых к старым.
	ListWorkouts(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error)
}
