package auth

import (
	"errors"
	"fmt"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by access tokens issued by the identity provider.
type Claims struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 token and resolves the caller.
func ParseToken(tokenString, secret string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, autherrors.ErrTokenNotFound
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Actor{}, autherrors.ErrTokenExpired
		}
		return domain.Actor{}, autherrors.ErrInvalidToken
	}
	if !token.Valid {
		return domain.Actor{}, autherrors.ErrInvalidToken
	}

	role := domain.NormalizeRole(claims.Role)
	if claims.UserID == "" || claims.EmployeeID == "" || role == "" {
		return domain.Actor{}, autherrors.ErrMissingClaim
	}

	return domain.Actor{
		UserID:     claims.UserID,
		EmployeeID: claims.EmployeeID,
		Role:       role,
	}, nil
}
