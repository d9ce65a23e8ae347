package models

// Department is an organizational unit. Deletion is blocked while any user
// references it.
type Department struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	ParentID   int64  `json:"parentId"`
	Status     string `json:"status"`
	CreateTime string `json:"createTime"`
}

// DepartmentInput carries the caller-settable department fields.
type DepartmentInput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	ParentID int64  `json:"parentId"`
	Status   string `json:"status"`
}
