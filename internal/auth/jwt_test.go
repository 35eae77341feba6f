package auth

import (
	"testing"
	"time"

	"portfolio_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Init("unit-test-secret", 24*time.Hour)

	token, err := GenerateToken("user-123", models.UserRoleDesigner)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleDesigner, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	Init("secret-one", 24*time.Hour)
	token, err := GenerateToken("user-123", models.UserRoleDesigner)
	require.NoError(t, err)

	// Токен, подписанный другим секретом, должен быть отвергнут
	Init("secret-two", 24*time.Hour)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Tampered(t *testing.T) {
	Init("unit-test-secret", 24*time.Hour)
	token, err := GenerateToken("user-123", models.UserRoleDesigner)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	Init("unit-test-secret", 24*time.Hour)

	// Собираем токен с exp в прошлом, но с КОРРЕКТНОЙ подписью
	now := time.Now()
	claims := Claims{
		UserID: "user-123",
		Role:   models.UserRoleDesigner,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	// Истечение отличимо от подделки
	_, err = ParseToken(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	Init("unit-test-secret", 24*time.Hour)
	_, err := ParseToken("not-a-token-at-all")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	// Хеш не равен исходному паролю и не сравним как plaintext
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
