package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GoFitLab/FitCoach/internal/domain"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  domain.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// Register — регистрирует пользователя и сразу выпускает токен.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, token, err := h.authUseCase.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			respondWithError(w, http.StatusBadRequest, "User with this email already exists", h.logger)
		case errors.Is(err, domain.ErrValidation):
			respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.Error("registration failed", "endpoint", "Register", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Server error during registration", h.logger)
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, authResponse{User: user.Public(), Token: token}, h.logger)
}

// Login — проверяет учетные данные и выпускает токен.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, token, err := h.authUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondWithError(w, http.StatusBadRequest, "Invalid credentials", h.logger)
			return
		}
		h.logger.Error("login failed", "endpoint", "Login", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Server error during login", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, authResponse{User: user.Public(), Token: token}, h.logger)
}
