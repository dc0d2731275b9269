package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL — время жизни токена. Списка отзыва нет:
// утекший токен остается валидным до естественного истечения.
const TokenTTL = 24 * time.Hour

// Claims — полезная нагрузка проверенного токена.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет подписанные JWT (HS256).
// Чистая функция над процессным секретом, состояния не хранит.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager создает TokenManager с TTL по умолчанию (24 часа).
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue выпускает подписанный токен с userID, email и сроком истечения.
func (m *TokenManager) Issue(userID uuid.UUID, email string) (string, error) {
	issuedAt := m.now()
	claims := tokenClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок жизни токена и возвращает его claims.
// Любая причина отказа (подпись, формат, истечение) сворачивается
// в domain.ErrInvalidToken.
func (m *TokenManager) Verify(signedToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}

	return &Claims{UserID: userID, Email: claims.Email}, nil
}
