package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/model"
	"github.com/antonio25x/pet-cheap/internal/service"
	"github.com/antonio25x/pet-cheap/internal/storage"
)

const userIDKey = "userID"

func tokenFrom(c *gin.Context) string {
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimPrefix(ah, "Bearer ")
	}
	if v, err := c.Cookie("session"); err == nil {
		return v
	}
	return ""
}

// OptionalAuth attaches the user id when a valid session token is
// present and lets the request through either way. Checkout uses this:
// guests check out with an unattributed order.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := tokenFrom(c); tok != "" {
			if uid, err := auth.ParseToken(tok); err == nil {
				c.Set(userIDKey, uid)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the request carries a valid session.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := tokenFrom(c)
		if tok == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "login required"})
			return
		}
		uid, err := auth.ParseToken(tok)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid session"})
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// RequireAdmin gates the admin product routes. The role is read from
// storage on every request, so a revoked admin loses access immediately;
// storage itself stays authorization-agnostic.
func RequireAdmin(auth service.AuthService, store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := tokenFrom(c)
		if tok == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "login required"})
			return
		}
		uid, err := auth.ParseToken(tok)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid session"})
			return
		}
		u, err := store.GetUser(uid)
		if err != nil {
			c.AbortWithStatusJSON(500, gin.H{"message": "Error fetching user: " + err.Error()})
			return
		}
		if u == nil || u.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(403, gin.H{"message": "Forbidden"})
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}
