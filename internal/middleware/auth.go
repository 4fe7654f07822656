package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/config"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/token"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthRequired validates the bearer token and stores the caller's identity in
// the request context.
func AuthRequired(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
				Success: false,
				Message: "authentication required",
			})
			return
		}

		claims, err := token.Parse(cfg, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
				Success: false,
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RoleRequired rejects callers whose role is not in the allowed set. Must run
// after AuthRequired.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{
			Success: false,
			Message: "insufficient permissions",
		})
	}
}

// CurrentUserID returns the authenticated user's id, or 0 when the route is
// public and no token was presented.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the authenticated user's role, or "".
func CurrentRole(c *gin.Context) string {
	return c.GetString(ContextRole)
}
