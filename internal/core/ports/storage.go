package ports

import (
	"context"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateUser сохраняет нового пользователя. Уникальность email
	// обеспечивается на уровне бд.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByEmail возвращает пользователя по email.
	// Если пользователь не найден, возвращает (nil, nil).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// WorkoutStorage определяет методы для взаимодействия с хранилищем тренировок
type WorkoutStorage interface {
	// SaveWorkout сохраняет запись тренировки.
	SaveWorkout(ctx context.Context, workout *domain.Workout) error

	// ListWorkoutsByUser возвращает все тренировки пользователя,
	// отсортированные от новых к старым.
	ListWorkoutsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error)

	// ListRecentWorkoutsByUser возвращает не более limit последних тренировок
	// пользователя, от новых к старым.
	ListRecentWorkoutsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Workout, error)
}
