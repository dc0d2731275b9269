package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoFitLab/FitCoach/internal/usecase"
)

// Handler — обработчик HTTP-запросов API. Бизнес-логики не содержит:
// только разбор запроса, вызов usecase и маппинг ошибки в статус.
type Handler struct {
	authUseCase           usecase.AuthUseCase
	workoutUseCase        usecase.WorkoutUseCase
	recommendationUseCase usecase.RecommendationUseCase
	logger                *slog.Logger
}

// NewHandler создает новый экземпляр Handler.
func NewHandler(
	authUC usecase.AuthUseCase,
	workoutUC usecase.WorkoutUseCase,
	recommendationUC usecase.RecommendationUseCase,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authUseCase:           authUC,
		workoutUseCase:        workoutUC,
		recommendationUseCase: recommendationUC,
		logger:                logger,
	}
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой вида {"error": "..."}.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// Health — проверка живости сервера.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	}, h.logger)
}

// APINotFound — JSON-ответ для неизвестных /api путей. На них SPA-фолбэк
// не распространяется.
func (h *Handler) APINotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "Not found", h.logger)
}
