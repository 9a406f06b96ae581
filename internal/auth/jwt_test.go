package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"github.com/yourname/wellnessgrid/internal"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTProviderValidToken(t *testing.T) {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	provider := NewJWTAuthProvider("test-secret", logger)

	signed := signToken(t, "test-secret", Claims{
		Name: "Test User",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	user, err := provider.ValidateTokenRemote(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "u42", user.ID)
	assert.Equal(t, "Test User", user.Name)
}

func TestJWTProviderRejectsBadSignature(t *testing.T) {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	provider := NewJWTAuthProvider("test-secret", logger)

	signed := signToken(t, "other-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := provider.ValidateTokenRemote(context.Background(), signed)
	assert.Error(t, err)
}

func TestJWTProviderRejectsExpiredToken(t *testing.T) {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	provider := NewJWTAuthProvider("test-secret", logger)

	signed := signToken(t, "test-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := provider.ValidateTokenRemote(context.Background(), signed)
	assert.Error(t, err)
}

func TestJWTProviderRejectsMissingSubject(t *testing.T) {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	provider := NewJWTAuthProvider("test-secret", logger)

	signed := signToken(t, "test-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := provider.ValidateTokenRemote(context.Background(), signed)
	assert.Error(t, err)
}
