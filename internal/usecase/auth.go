package usecase

import (
	"context"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

// PasswordHasher определяет интерфейс для одностороннего хэширования паролей.
// Вынесен в интерфейс, чтобы в тестах подменять на дешевую реализацию.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare возвращает domain.ErrInvalidCredentials при несовпадении.
	Compare(hash, password string) error
}

// TokenIssuer определяет интерфейс для выпуска подписанных токенов.
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, error)
}

// AuthUseCase определяет интерфейс бизнес-логики регистрации и входа.
type AuthUseCase interface {
	// Register создает пользователя и возвращает его вместе с выпущенным токеном.
	// Возвращает domain.ErrDuplicateEmail, если email уже занят.
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)

	// Login проверяет учетные данные и возвращает пользователя с токеном.
	// Неизвестный email и неверный пароль возвращают одну и ту же
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
