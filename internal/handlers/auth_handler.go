package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"contractdesk/internal/middleware"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the credentials and returns a session token plus the
// sanitized user projection. The failure message never reveals whether the
// username exists.
func (h *Handler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := h.identity.Authenticate(in.Username, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), *user)
	if err != nil {
		slog.Error("Failed to issue session token", "error", err, "user_id", user.ID)
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"token": token, "user": user})
}

// Logout revokes the presented token. A missing or already-dead token is
// not an error.
func (h *Handler) Logout(c *gin.Context) {
	tokenStr := bearerToken(c)
	if tokenStr != "" {
		if err := h.sessions.Revoke(c.Request.Context(), tokenStr); err != nil {
			slog.Warn("Failed to revoke session token", "error", err)
		}
	}
	respondOK(c, nil)
}

// UserInfo returns the logged-in user's full sanitized projection.
func (h *Handler) UserInfo(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	info, err := h.identity.UserInfo(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, info)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
