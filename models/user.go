package models

// StatusActive is the active flag convention shared by users, departments
// and roles.
const StatusActive = "1"

// RoleRef is the compact role projection carried on a user.
type RoleRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// User is a staff account. Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Password     string    `json:"-"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Avatar       string    `json:"avatar"`
	DepartmentID int64     `json:"departmentId"`
	Status       string    `json:"status"`
	CreateTime   string    `json:"createTime"`
	Roles        []RoleRef `json:"roles"`
}

// UserRow is a user list row with the department name joined in.
type UserRow struct {
	User
	Department string `json:"department"`
}

// UserInput carries the caller-settable fields for user creation and update.
type UserInput struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Password     string  `json:"password"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DepartmentID int64   `json:"departmentId"`
	Status       string  `json:"status"`
	RoleIDs      []int64 `json:"roleIds"`
}

// SessionUser is the sanitized projection returned on login and stamped,
// as creator identity, onto new contracts and records.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// UserInfo is the full sanitized projection served to the logged-in user.
type UserInfo struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Avatar       string    `json:"avatar"`
	DepartmentID int64     `json:"departmentId"`
	Department   string    `json:"department"`
	Status       string    `json:"status"`
	Roles        []RoleRef `json:"roles"`
}
