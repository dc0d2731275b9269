package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/GoFitLab/FitCoach/internal/core/ports"
	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

// historyLimit — сколько последних тренировок попадает в промпт.
const historyLimit = 10

const systemPrompt = "You are a helpful AI fitness coach. Always return responses as valid JSON only."

// emptyHistoryFallback подставляется вместо истории, когда у пользователя
// еще нет ни одной записанной тренировки.
const emptyHistoryFallback = "The user has no logged workouts yet. Please create a balanced, beginner-friendly 3-day full-body workout plan."

const planPromptTemplate = `You are an expert fitness coach. Based on the user's recent workout history, create a new personalized 3-day workout plan designed to promote muscle growth and strength.

User's recent workouts:
%s

Instructions:
1. Create a plan for 3 distinct days.
2. Each day should have a clear focus (e.g., "Push Day", "Pull Day", "Leg Day", or "Full Body A").
3. Include 3-5 exercises per day.
4. Provide a reasonable number of sets and a rep range (e.g., "8-12 reps").
5. Ensure the plan is balanced and targets major muscle groups over the 3 days.

Return ONLY the raw JSON object for the plan. Do not include markdown, introductory text, or any other explanations. Your entire response must be a single, valid JSON object starting with { and ending with }.
Example format: { "plan": [ { "day": 1, "focus": "...", "exercises": [...] } ] }`

// recommendationUseCase implements RecommendationUseCase
type recommendationUseCase struct {
	workoutStorage ports.WorkoutStorage
	generator      PlanGenerator
	logger         *slog.Logger
}

// NewRecommendationUseCase создает новый экземпляр RecommendationUseCase.
func NewRecommendationUseCase(
	workoutStorage ports.WorkoutStorage,
	generator PlanGenerator,
	logger *slog.Logger,
) RecommendationUseCase {
	return &recommendationUseCase{
		workoutStorage: workoutStorage,
		generator:      generator,
		logger:         logger,
	}
}

// GetRecommendation выполняет полную цепочку: история -> промпт -> модель ->
// парсинг -> валидация. Ни один шаг не ретраится, каждая ошибка
// возвращается вызывающему как отдельный sentinel.
func (uc *recommendationUseCase) GetRecommendation(ctx context.Context, userID uuid.UUID, forceRefresh bool) (*domain.RecommendationPlan, error) {
	if !uc.generator.Configured() {
		return nil, domain.ErrAINotConfigured
	}

	workouts, err := uc.workoutStorage.ListRecentWorkoutsByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch recent workouts: %w", err)
	}

	prompt := buildPlanPrompt(workouts)

	uc.logger.Info("requesting workout plan from model",
		"user_id", userID,
		"history_entries", len(workouts),
		"force_refresh", forceRefresh,
	)

	content, err := uc.generator.CompleteJSON(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("complete plan request: %w", err)
	}

	plan, err := parsePlanResponse(content)
	if err != nil {
		uc.logger.Error("model returned unusable plan", "user_id", userID, "error", err)
		return nil, err
	}

	uc.logger.Info("workout plan generated", "user_id", userID, "days", len(plan.Plan))
	return plan, nil
}

// buildPlanPrompt рендерит тренировки в фиксированный текстовый формат
// и оборачивает их в шаблон инструкции для модели.
func buildPlanPrompt(workouts []domain.Workout) string {
	if len(workouts) == 0 {
		return fmt.Sprintf(planPromptTemplate, emptyHistoryFallback)
	}

	lines := make([]string, 0, len(workouts))
	for _, w := range workouts {
		lines = append(lines, fmt.Sprintf("- %s: %d sets of %d reps at %gkg on %s",
			w.ExerciseName, w.Sets, w.Reps, w.Weight, w.CreatedAt.Format("1/2/2006")))
	}
	return fmt.Sprintf(planPromptTemplate, strings.Join(lines, "\n"))
}

// parsePlanResponse парсит текст ответа модели и проверяет его структуру.
// Невалидный JSON -> ErrMalformedAIResponse; валидный JSON без поля plan-массива
// или с пустым планом -> ErrUnexpectedAIShape.
func parsePlanResponse(content string) (*domain.RecommendationPlan, error) {
	raw := []byte(content)
	if !json.Valid(raw) {
		return nil, domain.ErrMalformedAIResponse
	}

	var envelope struct {
		Plan json.RawMessage `json:"plan"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Plan == nil {
		return nil, domain.ErrUnexpectedAIShape
	}

	var days []domain.DayPlan
	if err := json.Unmarshal(envelope.Plan, &days); err != nil {
		return nil, errors.Join(domain.ErrUnexpectedAIShape, err)
	}

	// План обязан содержать хотя бы один день с непустым списком упражнений.
	if len(days) == 0 {
		return nil, domain.ErrUnexpectedAIShape
	}
	hasExercises := false
	for _, d := range days {
		if len(d.Exercises) > 0 {
			hasExercises = true
			break
		}
	}
	if !hasExercises {
		return nil, domain.ErrUnexpectedAIShape
	}

	return &domain.RecommendationPlan{Plan: days}, nil
}
