package auth

import (
	"testing"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, h.Compare(hash, "correct horse battery staple"))
}

func TestCompareWrongPassword(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("right-password")
	require.NoError(t, err)

	err = h.Compare(hash, "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestHashesAreSalted(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// соль у bcrypt случайная на каждый вызов
	assert.NotEqual(t, first, second)
}
