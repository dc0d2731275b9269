package auth

import (
	"fmt"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher хэширует пароли через bcrypt. Соль у bcrypt своя на каждый
// хэш, отдельно ее хранить не нужно.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создает hasher со стоимостью bcrypt по умолчанию.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash возвращает bcrypt-хэш пароля.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare сверяет пароль с хэшем. Несовпадение возвращается как
// domain.ErrInvalidCredentials, без уточнения причины.
func (h *BcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
