package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GoFitLab/FitCoach/internal/domain"
)

// ListWorkouts — возвращает тренировки аутентифицированного пользователя,
// от новых к старым. userID берется только из проверенного токена.
func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Access token required", h.logger)
		return
	}

	workouts, err := h.workoutUseCase.ListWorkouts(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("failed to list workouts", "endpoint", "ListWorkouts", "user_id", claims.UserID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Server error fetching workouts", h.logger)
		return
	}

	if workouts == nil {
		workouts = []domain.Workout{}
	}
	respondWithJSON(w, http.StatusOK, workouts, h.logger)
}

// AddWorkout — записывает одну тренировку.
func (h *Handler) AddWorkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Access token required", h.logger)
		return
	}

	var input domain.NewWorkoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid workout request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	workout, err := h.workoutUseCase.AddWorkout(r.Context(), claims.UserID, input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		h.logger.Error("failed to add workout", "endpoint", "AddWorkout", "user_id", claims.UserID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Server error adding workout", h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, workout, h.logger)
}
