package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoflow/autoflow/pkg/auth"
	"github.com/autoflow/autoflow/pkg/metrics"
	"github.com/autoflow/autoflow/pkg/model"
)

const (
	ctxUserIDKey = "auth.user_id"
	ctxRoleKey   = "auth.role"
)

// Auth validates the bearer token. A missing or malformed Authorization
// header is 401; a present token that fails verification is 403.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization"})
			return
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "empty token"})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxRoleKey, model.Role(claims.Role))
		c.Next()
	}
}

// UserID returns the authenticated caller's id. Only valid behind Auth.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(ctxUserIDKey)
	userID, _ := id.(uuid.UUID)
	return userID
}

func RoleOf(c *gin.Context) model.Role {
	value, _ := c.Get(ctxRoleKey)
	role, _ := value.(model.Role)
	return role
}

func IsAdmin(c *gin.Context) bool {
	return RoleOf(c) == model.RoleAdmin
}
