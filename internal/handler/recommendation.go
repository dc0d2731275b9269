package handler

import (
	"errors"
	"net/http"

	"github.com/GoFitLab/FitCoach/internal/domain"
)

// GetRecommendation — запрашивает у внешней модели 3-дневный план тренировок.
// Параметр ?refresh=true принимается и прокидывается дальше, но кэша планов
// нет, так что каждый вызов и без него идет в модель заново.
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Access token required", h.logger)
		return
	}

	forceRefresh := r.URL.Query().Get("refresh") == "true"

	plan, err := h.recommendationUseCase.GetRecommendation(r.Context(), claims.UserID, forceRefresh)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAINotConfigured):
			h.logger.Error("ai recommendation requested without api key", "endpoint", "GetRecommendation")
			respondWithError(w, http.StatusInternalServerError, "AI Coach is not configured. The API key is missing.", h.logger)
		case errors.Is(err, domain.ErrMalformedAIResponse):
			h.logger.Error("ai returned non-json response", "endpoint", "GetRecommendation", "user_id", claims.UserID)
			respondWithError(w, http.StatusInternalServerError, "AI response was not valid JSON. Please try again.", h.logger)
		case errors.Is(err, domain.ErrUnexpectedAIShape):
			h.logger.Error("ai returned unexpected plan shape", "endpoint", "GetRecommendation", "user_id", claims.UserID)
			respondWithError(w, http.StatusInternalServerError, "The AI coach generated a plan in an unexpected format. Please try again.", h.logger)
		default:
			h.logger.Error("ai recommendation failed", "endpoint", "GetRecommendation", "user_id", claims.UserID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "The AI coach could not generate a plan. Please try again later.", h.logger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, plan, h.logger)
}
