package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoFitLab/FitCoach/internal/core/ports"
	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

// workoutUseCase implements WorkoutUseCase
type workoutUseCase struct {
	workoutStorage ports.WorkoutStorage
	logger         *slog.Logger
}

// NewWorkoutUseCase создает новый экземпляр WorkoutUseCase.
func NewWorkoutUseCase(workoutStorage ports.WorkoutStorage, logger *slog.Logger) WorkoutUseCase {
	return &workoutUseCase{
		workoutStorage: workoutStorage,
		logger:         logger,
	}
}

// AddWorkout сохраняет запись тренировки после явной проверки диапазонов.
func (uc *workoutUseCase) AddWorkout(ctx context.Context, userID uuid.UUID, input domain.NewWorkoutInput) (*domain.Workout, error) {
	if err := validateWorkoutInput(input); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		ID:           uuid.New(),
		UserID:       userID,
		ExerciseName: strings.TrimSpace(input.ExerciseName),
		Sets:         input.Sets,
		Reps:         input.Reps,
		Weight:       input.Weight,
		CreatedAt:    time.Now(),
	}

	if err := uc.workoutStorage.SaveWorkout(ctx, workout); err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}

	uc.logger.Info("workout saved",
		"workout_id", workout.ID,
		"user_id", userID,
		"exercise", workout.ExerciseName,
	)
	return workout, nil
}

// ListWorkouts возвращает тренировки пользователя от новых к старым.
func (uc *workoutUseCase) ListWorkouts(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error) {
	workouts, err := uc.workoutStorage.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// validateWorkoutInput проверяет диапазоны числовых полей.
// Подходы и повторения строго положительные, вес неотрицательный.
func validateWorkoutInput(input domain.NewWorkoutInput) error {
	if strings.TrimSpace(input.ExerciseName) == "" {
		return fmt.Errorf("%w: exerciseName is required", domain.ErrValidation)
	}
	if input.Sets < 1 {
		return fmt.Errorf("%w: sets must be a positive integer", domain.ErrValidation)
	}
	if input.Reps < 1 {
		return fmt.Errorf("%w: reps must be a positive integer", domain.ErrValidation)
	}
	if input.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", domain.ErrValidation)
	}
	return nil
}
