package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"contractdesk/internal/store"
	"contractdesk/models"
)

const defaultPassword = "123456"

// IdentityService covers authentication and user/department/role
// administration.
type IdentityService struct {
	store *store.Store
	audit *SystemService
	opts  options
}

func NewIdentityService(st *store.Store, audit *SystemService, opts ...Option) *IdentityService {
	return &IdentityService{store: st, audit: audit, opts: newOptions(opts)}
}

// Authenticate checks the credentials against the stored bcrypt hash and
// returns the sanitized user projection. The failure error is the same for
// an unknown username and a wrong password.
func (s *IdentityService) Authenticate(username, password string) (*models.SessionUser, error) {
	s.opts.pause()
	var su *models.SessionUser
	err := s.store.View(func(d *store.Data) error {
		u := d.FindUserByName(username)
		if u == nil {
			return models.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return models.ErrInvalidCredentials
		}
		su = &models.SessionUser{ID: u.ID, Username: u.Username, Name: u.Name, Avatar: u.Avatar}
		return nil
	})
	if err != nil {
		if s.audit != nil {
			s.audit.Record(models.AuditError, username, "failed login attempt", "")
		}
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(models.AuditLogin, su.Username, "logged in", "")
	}
	return su, nil
}

// UserInfo returns the full sanitized projection of one user, with the
// department name joined in.
func (s *IdentityService) UserInfo(id int64) (*models.UserInfo, error) {
	s.opts.pause()
	var info *models.UserInfo
	err := s.store.View(func(d *store.Data) error {
		u := d.FindUser(id)
		if u == nil {
			return models.NotFoundError{Resource: "user"}
		}
		info = &models.UserInfo{
			ID:           u.ID,
			Username:     u.Username,
			Name:         u.Name,
			Email:        u.Email,
			Phone:        u.Phone,
			Avatar:       u.Avatar,
			DepartmentID: u.DepartmentID,
			Department:   d.DepartmentName(u.DepartmentID),
			Status:       u.Status,
			Roles:        append([]models.RoleRef(nil), u.Roles...),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ListUsers pages through users; the keyword matches username, name and
// email, and each row carries its department name.
func (s *IdentityService) ListUsers(q store.Query) store.Page[models.UserRow] {
	s.opts.pause()
	var page store.Page[models.UserRow]
	_ = s.store.View(func(d *store.Data) error {
		rows := make([]models.UserRow, len(d.Users))
		for i, u := range d.Users {
			rows[i] = models.UserRow{User: u, Department: d.DepartmentName(u.DepartmentID)}
		}
		page = store.Select(rows, q,
			func(r models.UserRow) []string { return []string{r.Username, r.Name, r.Email} },
			func(r models.UserRow) string { return r.Status },
			func(r models.UserRow) int64 { return r.DepartmentID },
		)
		return nil
	})
	return page
}

// AddUser creates a user. The username must not collide with any existing
// one (case-sensitive) and a password is required.
func (s *IdentityService) AddUser(in models.UserInput, actor models.SessionUser) (*models.User, error) {
	s.opts.pause()
	if in.Password == "" {
		return nil, models.ValidationError{Reason: "password is required"}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var created models.User
	err = s.store.Write(func(d *store.Data) error {
		if d.FindUserByName(in.Username) != nil {
			return models.ConflictError{Reason: "username already exists"}
		}
		roles, err := resolveRoles(d, in.RoleIDs)
		if err != nil {
			return err
		}
		status := in.Status
		if status == "" {
			status = models.StatusActive
		}
		created = models.User{
			ID:           d.NextUserID(),
			Username:     in.Username,
			Name:         in.Name,
			Password:     string(hashed),
			Email:        in.Email,
			Phone:        in.Phone,
			Avatar:       "/static/avatars/default.png",
			DepartmentID: in.DepartmentID,
			Status:       status,
			CreateTime:   s.opts.stamp(),
			Roles:        roles,
		}
		d.Users = append(d.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.record(actor, fmt.Sprintf("created user %s", in.Username))
	return &created, nil
}

// UpdateUser overwrites a user's caller-settable fields. The password only
// changes when a new one is supplied.
func (s *IdentityService) UpdateUser(in models.UserInput, actor models.SessionUser) (*models.User, error) {
	s.opts.pause()
	var hashed string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed = string(h)
	}

	var updated models.User
	err := s.store.Write(func(d *store.Data) error {
		u := d.FindUser(in.ID)
		if u == nil {
			return models.NotFoundError{Resource: "user"}
		}
		if other := d.FindUserByName(in.Username); other != nil && other.ID != in.ID {
			return models.ConflictError{Reason: "username already exists"}
		}
		roles, err := resolveRoles(d, in.RoleIDs)
		if err != nil {
			return err
		}
		u.Username = in.Username
		u.Name = in.Name
		u.Email = in.Email
		u.Phone = in.Phone
		u.DepartmentID = in.DepartmentID
		if in.Status != "" {
			u.Status = in.Status
		}
		u.Roles = roles
		if hashed != "" {
			u.Password = hashed
		}
		updated = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.record(actor, fmt.Sprintf("updated user %s", in.Username))
	return &updated, nil
}

func resolveRoles(d *store.Data, roleIDs []int64) ([]models.RoleRef, error) {
	refs := make([]models.RoleRef, 0, len(roleIDs))
	for _, id := range roleIDs {
		r := d.FindRole(id)
		if r == nil {
			return nil, models.ValidationError{Reason: fmt.Sprintf("unknown role id %d", id)}
		}
		refs = append(refs, models.RoleRef{ID: r.ID, Name: r.Name, Code: r.Code})
	}
	return refs, nil
}

// DeleteUser removes a user unconditionally.
func (s *IdentityService) DeleteUser(id int64, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				d.Users = append(d.Users[:i], d.Users[i+1:]...)
				return nil
			}
		}
		return models.NotFoundError{Resource: "user"}
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("deleted user %d", id))
	return nil
}

// UpdateUserStatus overwrites the status flag only.
func (s *IdentityService) UpdateUserStatus(id int64, status string, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		u := d.FindUser(id)
		if u == nil {
			return models.NotFoundError{Resource: "user"}
		}
		u.Status = status
		return nil
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("set user %d status to %s", id, status))
	return nil
}

// ResetPassword sets the user's password back to the default.
func (s *IdentityService) ResetPassword(id int64, actor models.SessionUser) error {
	s.opts.pause()
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = s.store.Write(func(d *store.Data) error {
		u := d.FindUser(id)
		if u == nil {
			return models.NotFoundError{Resource: "user"}
		}
		u.Password = string(hashed)
		return nil
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("reset password of user %d", id))
	return nil
}

// ListDepartments pages through departments; the keyword matches name and
// code.
func (s *IdentityService) ListDepartments(q store.Query) store.Page[models.Department] {
	s.opts.pause()
	var page store.Page[models.Department]
	_ = s.store.View(func(d *store.Data) error {
		page = store.Select(d.Departments, q,
			func(dep models.Department) []string { return []string{dep.Name, dep.Code} },
			func(dep models.Department) string { return dep.Status },
			nil,
		)
		return nil
	})
	return page
}

// AddDepartment creates a department.
func (s *IdentityService) AddDepartment(in models.DepartmentInput, actor models.SessionUser) (int64, error) {
	s.opts.pause()
	var id int64
	err := s.store.Write(func(d *store.Data) error {
		status := in.Status
		if status == "" {
			status = models.StatusActive
		}
		id = d.NextDepartmentID()
		d.Departments = append(d.Departments, models.Department{
			ID:         id,
			Name:       in.Name,
			Code:       in.Code,
			ParentID:   in.ParentID,
			Status:     status,
			CreateTime: s.opts.stamp(),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.record(actor, fmt.Sprintf("created department %s", in.Name))
	return id, nil
}

// UpdateDepartment overwrites a department's caller-settable fields.
func (s *IdentityService) UpdateDepartment(in models.DepartmentInput, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		dep := d.FindDepartment(in.ID)
		if dep == nil {
			return models.NotFoundError{Resource: "department"}
		}
		dep.Name = in.Name
		dep.Code = in.Code
		dep.ParentID = in.ParentID
		if in.Status != "" {
			dep.Status = in.Status
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("updated department %s", in.Name))
	return nil
}

// DeleteDepartment removes a department unless any user still references it.
func (s *IdentityService) DeleteDepartment(id int64, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		idx := -1
		for i := range d.Departments {
			if d.Departments[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return models.NotFoundError{Resource: "department"}
		}
		for _, u := range d.Users {
			if u.DepartmentID == id {
				return models.ConflictError{Reason: "department has assigned users"}
			}
		}
		d.Departments = append(d.Departments[:idx], d.Departments[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("deleted department %d", id))
	return nil
}

// ListRoles pages through roles; the keyword matches name and code.
func (s *IdentityService) ListRoles(q store.Query) store.Page[models.Role] {
	s.opts.pause()
	var page store.Page[models.Role]
	_ = s.store.View(func(d *store.Data) error {
		page = store.Select(d.Roles, q,
			func(r models.Role) []string { return []string{r.Name, r.Code} },
			func(r models.Role) string { return r.Status },
			nil,
		)
		return nil
	})
	return page
}

// AddRole creates a role.
func (s *IdentityService) AddRole(in models.RoleInput, actor models.SessionUser) (int64, error) {
	s.opts.pause()
	var id int64
	err := s.store.Write(func(d *store.Data) error {
		status := in.Status
		if status == "" {
			status = models.StatusActive
		}
		id = d.NextRoleID()
		d.Roles = append(d.Roles, models.Role{
			ID:          id,
			Name:        in.Name,
			Code:        in.Code,
			Status:      status,
			CreateTime:  s.opts.stamp(),
			Permissions: append([]string(nil), in.Permissions...),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.record(actor, fmt.Sprintf("created role %s", in.Name))
	return id, nil
}

// UpdateRole overwrites a role's caller-settable fields.
func (s *IdentityService) UpdateRole(in models.RoleInput, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		r := d.FindRole(in.ID)
		if r == nil {
			return models.NotFoundError{Resource: "role"}
		}
		r.Name = in.Name
		r.Code = in.Code
		if in.Status != "" {
			r.Status = in.Status
		}
		if in.Permissions != nil {
			r.Permissions = append([]string(nil), in.Permissions...)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("updated role %s", in.Name))
	return nil
}

// DeleteRole removes a role unless any user still holds it.
func (s *IdentityService) DeleteRole(id int64, actor models.SessionUser) error {
	s.opts.pause()
	err := s.store.Write(func(d *store.Data) error {
		idx := -1
		for i := range d.Roles {
			if d.Roles[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return models.NotFoundError{Resource: "role"}
		}
		for _, u := range d.Users {
			for _, r := range u.Roles {
				if r.ID == id {
					return models.ConflictError{Reason: "role is assigned to users"}
				}
			}
		}
		d.Roles = append(d.Roles[:idx], d.Roles[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	s.record(actor, fmt.Sprintf("deleted role %d", id))
	return nil
}

func (s *IdentityService) record(actor models.SessionUser, operation string) {
	if s.audit != nil {
		s.audit.Record(models.AuditOperation, actor.Username, operation, "")
	}
}
