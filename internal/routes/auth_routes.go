package routes

import (
	"github.com/gin-gonic/gin"

	"contractdesk/internal/handlers"
)

// RegisterAuthRoutes registers the routes reachable without a session
// token.
func RegisterAuthRoutes(r *gin.Engine, h *handlers.Handler) {
	r.POST("/api/auth/login", h.Login)
}
