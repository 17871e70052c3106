package middleware

import (
	"net/http"
	"strings"

	"hostel_manager/internal/session"
	"hostel_manager/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey    = "authUser"
	AuthRoleKey    = "authRole"
	AuthSessionKey = "authSession"

	// SessionCookie carries the session token for browser clients.
	// API clients may send it as a bearer token instead.
	SessionCookie = "hostel_session"
)

// SessionAuthMiddleware authenticates a request against the session store.
// The token signature proves the session ID was issued by us; the store
// decides whether that session is still alive. Rejections carry an empty
// body by contract.
func SessionAuthMiddleware(jwtUtil *utils.JWTUtil, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		sess := store.Get(claims.SessionID)
		if sess == nil || sess.UserID != claims.UserID {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		store.Touch(sess.ID)

		c.Set(AuthUserKey, sess.UserID)
		c.Set(AuthRoleKey, sess.Role)
		c.Set(AuthSessionKey, sess.ID)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
