package handlers

import (
	"github.com/gin-gonic/gin"

	"contractdesk/internal/middleware"
	"contractdesk/models"
)

// ListUsers returns a filtered page of users with department names joined
// in.
func (h *Handler) ListUsers(c *gin.Context) {
	respondOK(c, h.identity.ListUsers(listQuery(c)))
}

// CreateUser adds a user; the username must be unique.
func (h *Handler) CreateUser(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "username and name are required")
		return
	}
	user, err := h.identity.AddUser(in, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// UpdateUser overwrites a user's caller-settable fields.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "username and name are required")
		return
	}
	in.ID = id
	user, err := h.identity.UpdateUser(in, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// DeleteUser removes a user.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.identity.DeleteUser(id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// UpdateUserStatus overwrites the status flag only.
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "status is required")
		return
	}
	if err := h.identity.UpdateUserStatus(id, in.Status, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// ResetPassword sets a user's password back to the default.
func (h *Handler) ResetPassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.identity.ResetPassword(id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
