package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	t.Run("valid token returns its claims", func(t *testing.T) {
		token := signedToken(t, testSecret, jwt.MapClaims{
			"user_id": "11111111-1111-1111-1111-111111111111",
			"role":    "member",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		claims, err := ValidateToken(token, testSecret)

		assert.NoError(t, err)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", (*claims)["user_id"])
		assert.Equal(t, "member", (*claims)["role"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signedToken(t, "other-secret", jwt.MapClaims{
			"user_id": "11111111-1111-1111-1111-111111111111",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		_, err := ValidateToken(token, testSecret)

		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signedToken(t, testSecret, jwt.MapClaims{
			"user_id": "11111111-1111-1111-1111-111111111111",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		_, err := ValidateToken(token, testSecret)

		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", testSecret)

		assert.Error(t, err)
	})
}
