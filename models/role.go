package models

// Role groups permission codes for authorization display. Deletion is
// blocked while any user holds the role.
type Role struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Status      string   `json:"status"`
	CreateTime  string   `json:"createTime"`
	Permissions []string `json:"permissions"`
}

// RoleInput carries the caller-settable role fields.
type RoleInput struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Code        string   `json:"code" binding:"required"`
	Status      string   `json:"status"`
	Permissions []string `json:"permissions"`
}

// Permission is a node of the static permission catalog served to the
// admin UI.
type Permission struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Code     string       `json:"code"`
	Children []Permission `json:"children,omitempty"`
}
