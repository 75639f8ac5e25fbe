package middleware

import (
	"brightminds_backend/internal/config"
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware allows only the listed roles. Admins always pass.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := user.Role == model.Admin
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ResolveChildID returns the child a request may act on. Child tokens are
// pinned to their own profile; parents and admins pass the id in the path and
// ownership is checked at the service layer.
func ResolveChildID(c *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return 0, false
	}

	if claims.Role == model.Child {
		return claims.ChildID, claims.ChildID != 0
	}

	raw := c.Param("childId")
	if raw == "" {
		raw = c.Query("childId")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
