package auth_test

import (
	"testing"
	"time"

	"go-hrms/internal/auth"
	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const secret = "test-secret"

func sign(t *testing.T, claims auth.Claims, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(key))
	assert.NoError(t, err)
	return s
}

func TestParseToken(t *testing.T) {
	valid := auth.Claims{
		UserID:     "user-1",
		EmployeeID: "emp-1",
		Role:       "hr",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("success normalizes role", func(t *testing.T) {
		actor, err := auth.ParseToken(sign(t, valid, secret), secret)

		assert.NoError(t, err)
		assert.Equal(t, domain.Actor{UserID: "user-1", EmployeeID: "emp-1", Role: domain.RoleHR}, actor)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.ParseToken("", secret)
		assert.ErrorIs(t, err, autherrors.ErrTokenNotFound)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.ParseToken(sign(t, valid, "other"), secret)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		_, err := auth.ParseToken(sign(t, expired, secret), secret)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("missing employee", func(t *testing.T) {
		missing := valid
		missing.EmployeeID = ""

		_, err := auth.ParseToken(sign(t, missing, secret), secret)
		assert.ErrorIs(t, err, autherrors.ErrMissingClaim)
	})
}
