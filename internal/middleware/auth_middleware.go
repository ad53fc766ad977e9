package middleware

import (
	"strings"

	"go-hrms/internal/auth"
	"go-hrms/internal/domain"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID     = "user_id"
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
)

// AuthMiddleware resolves the caller from a bearer token or the access_token cookie.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		actor, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, actor.UserID)
		c.Set(ContextEmployeeID, actor.EmployeeID)
		c.Set(ContextRole, actor.Role)

		c.Next()
	}
}

// CurrentActor reads the caller set by AuthMiddleware.
func CurrentActor(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID:     c.GetString(ContextUserID),
		EmployeeID: c.GetString(ContextEmployeeID),
		Role:       c.GetString(ContextRole),
	}
}
