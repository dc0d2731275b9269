package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutStorage реализует интерфейс ports.WorkoutStorage с использованием GORM.
type WorkoutStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewWorkoutStorage создает новый экземпляр WorkoutStorage.
func NewWorkoutStorage(db *gorm.DB, logger *slog.Logger) *WorkoutStorage {
	return &WorkoutStorage{db: db, logger: logger}
}

// SaveWorkout сохраняет запись тренировки в базе данных с помощью GORM.
func (s *WorkoutStorage) SaveWorkout(ctx context.Context, workout *domain.Workout) error {
	start := time.Now()

	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}

	result := s.db.WithContext(ctx).Create(workout)
	if result.Error != nil {
		s.logger.Error("failed to save workout", "user_id", workout.UserID, "error", result.Error)
		return fmt.Errorf("insert workout: %w", result.Error)
	}

	s.logger.Info("workout saved",
		"workout_id", workout.ID,
		"user_id", workout.UserID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ListWorkoutsByUser возвращает все тренировки пользователя от новых к старым.
func (s *WorkoutStorage) ListWorkoutsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error) {
	return s.listByUser(ctx, userID, 0)
}

// ListRecentWorkoutsByUser возвращает не более limit последних тренировок.
func (s *WorkoutStorage) ListRecentWorkoutsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Workout, error) {
	return s.listByUser(ctx, userID, limit)
}

// listByUser выбирает тренировки пользователя. limit <= 0 означает без лимита.
func (s *WorkoutStorage) listByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Workout, error) {
	start := time.Now()

	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var workouts []domain.Workout
	if result := query.Find(&workouts); result.Error != nil {
		s.logger.Error("failed to list workouts", "user_id", userID, "error", result.Error)
		return nil, fmt.Errorf("select workouts: %w", result.Error)
	}

	s.logger.Info("workouts listed",
		"user_id", userID,
		"count", len(workouts),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return workouts, nil
}
