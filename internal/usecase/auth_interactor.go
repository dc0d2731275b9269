package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoFitLab/FitCoach/internal/core/ports"
	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

// authUseCase implements AuthUseCase
type authUseCase struct {
	userStorage ports.UserStorage
	hasher      PasswordHasher
	tokens      TokenIssuer
	logger      *slog.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase.
func NewAuthUseCase(
	userStorage ports.UserStorage,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userStorage: userStorage,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register создает пользователя с хэшированным паролем и выпускает токен.
// Сам пароль не логируется и нигде не сохраняется в открытом виде.
func (uc *authUseCase) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}

	existing, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", domain.ErrDuplicateEmail
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Login проверяет email и пароль. Обе причины отказа (нет такого email,
// неверный пароль) намеренно неразличимы для клиента.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}
