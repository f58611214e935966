package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestGenerateAndVerifyToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(testSecret, userID, 72*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), -time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken("some-other-secret", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := VerifyToken(testSecret, tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestVerifyTokenMissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenUnparsableSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "not-a-uuid",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
