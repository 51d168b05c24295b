package token

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Error generating random bytes: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	secretKey := newSecret()
	issuer := "vinom-guard-test"
	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"sub": "walker-client"}, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "walker-client", claims["sub"])
		assert.Equal(t, issuer, claims["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"sub": "walker-client"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Reject token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "someone-else")
		token, err := other.Generate(map[string]interface{}{}, 5*time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrIssuerMismatch)
	})

	t.Run("Reject token signed with another secret", func(t *testing.T) {
		other := NewJwtService(newSecret(), issuer)
		token, err := other.Generate(map[string]interface{}{}, 5*time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Caller claims cannot override issuer", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"iss": "forged"}, 5*time.Minute)
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, issuer, claims["iss"])
	})
}
