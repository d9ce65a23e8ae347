package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contractdesk/internal/session"
	"contractdesk/models"
)

// Context keys set for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxUserName = "userName"
)

// Auth validates the session token from the Authorization header (or the
// auth_token cookie as a fallback) and stores the caller's identity in the
// request context.
func Auth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				abortUnauthorized(c, "invalid Authorization header format")
				return
			}
			tokenStr = parts[1]
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			abortUnauthorized(c, "authorization token not provided")
			return
		}

		claims, err := sessions.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxUserName, claims.Name)
		c.Next()
	}
}

// CurrentUser reads the identity stored by Auth. The zero value comes back
// on unauthenticated routes.
func CurrentUser(c *gin.Context) models.SessionUser {
	var u models.SessionUser
	if v, ok := c.Get(CtxUserID); ok {
		u.ID, _ = v.(int64)
	}
	if v, ok := c.Get(CtxUsername); ok {
		u.Username, _ = v.(string)
	}
	if v, ok := c.Get(CtxUserName); ok {
		u.Name, _ = v.(string)
	}
	return u
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
		"data":    nil,
	})
}
