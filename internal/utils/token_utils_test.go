package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	signed, err := GenerateJWT("user-1", "secret", 30*time.Minute, "finance", now)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), token.Method.Alg())
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "finance", claims.Issuer)
	assert.True(t, now.Add(30*time.Minute).Equal(claims.ExpiresAt.Time))
	assert.True(t, now.Equal(claims.IssuedAt.Time))
}
