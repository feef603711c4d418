package jwt

import (
	"testing"
	"time"

	"gamesrank/backend/internal/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfig(t *testing.T) {
	t.Helper()
	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTTTLHours: 1}
	t.Cleanup(func() { config.AppConfig = previous })
}

func TestGenerateAndParse(t *testing.T) {
	withConfig(t)

	token, err := GenerateToken(42)
	require.NoError(t, err)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseToken_Rejects(t *testing.T) {
	withConfig(t)

	sign := func(method gojwt.SigningMethod, key any, claims gojwt.MapClaims) string {
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := gojwt.MapClaims{"sub": 7, "exp": time.Now().Add(time.Hour).Unix()}

	tests := map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": sign(gojwt.SigningMethodHS256, []byte("other"), valid),
		"expired":      sign(gojwt.SigningMethodHS256, []byte("test-secret"), gojwt.MapClaims{"sub": 7, "exp": time.Now().Add(-time.Hour).Unix()}),
		"missing sub":  sign(gojwt.SigningMethodHS256, []byte("test-secret"), gojwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
		"none alg":     sign(gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, valid),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
