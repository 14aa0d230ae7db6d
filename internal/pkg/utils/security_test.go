package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, CheckPasswordHash("Sup3rSecret!", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundtrip(t *testing.T) {
	secret := "test-jwt-secret-12345"
	sessionID := "9f4f1c1a-0000-4000-8000-000000000000"

	t.Run("valid token yields the session id", func(t *testing.T) {
		token, err := GenerateJWT(sessionID, secret, time.Hour)
		assert.NoError(t, err)

		parsed, err := ParseJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, sessionID, parsed)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := GenerateJWT(sessionID, "another-secret", time.Hour)
		assert.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := GenerateJWT(sessionID, secret, -time.Minute)
		assert.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ParseJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}
