package routes

import (
	"github.com/gin-gonic/gin"

	"contractdesk/internal/handlers"
	"contractdesk/internal/middleware"
	"contractdesk/internal/session"
)

// Setup wires the public auth routes and the token-protected API group
// onto the engine.
func Setup(r *gin.Engine, h *handlers.Handler, sessions *session.Manager) {
	RegisterAuthRoutes(r, h)

	authRequired := r.Group("/")
	authRequired.Use(middleware.Auth(sessions))
	{
		RegisterAPIRoutes(authRequired, h)
	}
}
