package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contractdesk/internal/middleware"
	"contractdesk/internal/service"
	"contractdesk/internal/store"
	"contractdesk/models"
)

// ListDepartments returns a filtered page of departments.
func (h *Handler) ListDepartments(c *gin.Context) {
	respondOK(c, h.identity.ListDepartments(listQuery(c)))
}

// CreateDepartment adds a department.
func (h *Handler) CreateDepartment(c *gin.Context) {
	var in models.DepartmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "name and code are required")
		return
	}
	id, err := h.identity.AddDepartment(in, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

// UpdateDepartment overwrites a department's caller-settable fields.
func (h *Handler) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.DepartmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "name and code are required")
		return
	}
	in.ID = id
	if err := h.identity.UpdateDepartment(in, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// DeleteDepartment removes a department; blocked while users reference it.
func (h *Handler) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.identity.DeleteDepartment(id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// ListRoles returns a filtered page of roles.
func (h *Handler) ListRoles(c *gin.Context) {
	respondOK(c, h.identity.ListRoles(listQuery(c)))
}

// CreateRole adds a role.
func (h *Handler) CreateRole(c *gin.Context) {
	var in models.RoleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "name and code are required")
		return
	}
	id, err := h.identity.AddRole(in, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

// UpdateRole overwrites a role's caller-settable fields.
func (h *Handler) UpdateRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.RoleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "name and code are required")
		return
	}
	in.ID = id
	if err := h.identity.UpdateRole(in, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// DeleteRole removes a role; blocked while users hold it.
func (h *Handler) DeleteRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.identity.DeleteRole(id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// ListPermissions returns the static permission catalog.
func (h *Handler) ListPermissions(c *gin.Context) {
	respondOK(c, h.system.PermissionTree())
}

// GetSystemConfig returns the dashboard configuration blob.
func (h *Handler) GetSystemConfig(c *gin.Context) {
	respondOK(c, h.system.Config())
}

// UpdateSystemConfig replaces the dashboard configuration blob.
func (h *Handler) UpdateSystemConfig(c *gin.Context) {
	var cfg models.SystemConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		respondBadRequest(c, "invalid config payload")
		return
	}
	h.system.UpdateConfig(cfg, middleware.CurrentUser(c))
	respondOK(c, nil)
}

// ListSystemLogs pages through the audit trail, filtered by type, username
// substring and time range.
func (h *Handler) ListSystemLogs(c *gin.Context) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("pageNum", strconv.Itoa(store.DefaultPageNum)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(store.DefaultPageSize)))
	respondOK(c, h.system.ListLogs(service.AuditQuery{
		Type:      c.Query("type"),
		Username:  c.Query("username"),
		StartTime: c.Query("startTime"),
		EndTime:   c.Query("endTime"),
		PageNum:   pageNum,
		PageSize:  pageSize,
	}))
}
