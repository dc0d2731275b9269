package usecase

import (
	"context"
	"testing"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUC(users *fakeUserStorage) AuthUseCase {
	return NewAuthUseCase(users, fakeHasher{}, fakeIssuer{}, discardLogger())
}

func TestRegisterSuccess(t *testing.T) {
	users := newFakeUserStorage()
	uc := newAuthUC(users)

	user, token, err := uc.Register(context.Background(), "alex", "alex@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "alex", user.Username)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.NotEmpty(t, token)

	// пароль сохранен только в виде хэша
	stored := users.users["alex@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStorage()
	uc := newAuthUC(users)

	_, _, err := uc.Register(context.Background(), "alex", "alex@example.com", "s3cret")
	require.NoError(t, err)

	_, _, err = uc.Register(context.Background(), "someone-else", "alex@example.com", "other")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRegisterMissingFields(t *testing.T) {
	uc := newAuthUC(newFakeUserStorage())

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"no username", "", "a@example.com", "pw"},
		{"no email", "alex", "", "pw"},
		{"no password", "alex", "a@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Register(context.Background(), tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserStorage()
	uc := newAuthUC(users)

	registered, _, err := uc.Register(context.Background(), "alex", "alex@example.com", "s3cret")
	require.NoError(t, err)

	user, token, err := uc.Login(context.Background(), "alex@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

// Неизвестный email и неверный пароль неразличимы для вызывающего.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUserStorage()
	uc := newAuthUC(users)

	_, _, err := uc.Register(context.Background(), "alex", "alex@example.com", "s3cret")
	require.NoError(t, err)

	_, _, wrongPassword := uc.Login(context.Background(), "alex@example.com", "not-the-password")
	_, _, unknownEmail := uc.Login(context.Background(), "nobody@example.com", "s3cret")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginStorageFailure(t *testing.T) {
	users := newFakeUserStorage()
	users.err = errStorageDown
	uc := newAuthUC(users)

	_, _, err := uc.Login(context.Background(), "alex@example.com", "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}
