package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractdesk/internal/store"
	"contractdesk/models"
)

func newIdentityService(st *store.Store) *IdentityService {
	return NewIdentityService(st, nil, testClock)
}

func TestAuthenticate(t *testing.T) {
	svc := newIdentityService(store.NewSeeded())

	t.Run("valid credentials", func(t *testing.T) {
		su, err := svc.Authenticate("admin", "123456")
		require.NoError(t, err)
		assert.Equal(t, int64(1), su.ID)
		assert.Equal(t, "admin", su.Username)
		assert.Equal(t, "System Administrator", su.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("admin", "wrong")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown username yields the same error", func(t *testing.T) {
		_, unknownErr := svc.Authenticate("nobody", "123456")
		_, wrongErr := svc.Authenticate("admin", "wrong")
		require.Error(t, unknownErr)
		assert.Equal(t, wrongErr.Error(), unknownErr.Error(), "the failure must not reveal whether the username exists")
	})
}

func TestUserInfo(t *testing.T) {
	svc := newIdentityService(store.NewSeeded())

	info, err := svc.UserInfo(1)
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Username)
	assert.Equal(t, "Executive Office", info.Department, "department name joined in")
	require.Len(t, info.Roles, 1)
	assert.Equal(t, "admin", info.Roles[0].Code)

	_, err = svc.UserInfo(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddUser(t *testing.T) {
	st := store.NewSeeded()
	svc := newIdentityService(st)

	t.Run("creates with defaults", func(t *testing.T) {
		u, err := svc.AddUser(models.UserInput{
			Username: "jdoe", Name: "Jane Doe", Password: "secret",
			DepartmentID: 4, RoleIDs: []int64{4},
		}, testActor)
		require.NoError(t, err)
		assert.Equal(t, int64(4), u.ID)
		assert.Equal(t, models.StatusActive, u.Status)
		assert.NotEqual(t, "secret", u.Password, "password stored as a hash")

		su, err := svc.Authenticate("jdoe", "secret")
		require.NoError(t, err)
		assert.Equal(t, u.ID, su.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.AddUser(models.UserInput{Username: "admin", Name: "Impostor", Password: "x"}, testActor)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("username match is case-sensitive", func(t *testing.T) {
		_, err := svc.AddUser(models.UserInput{Username: "Admin", Name: "Other Admin", Password: "x"}, testActor)
		assert.NoError(t, err)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := svc.AddUser(models.UserInput{Username: "nopass", Name: "No Password"}, testActor)
		assert.ErrorIs(t, err, models.ValidationError{})
	})

	t.Run("unknown role id", func(t *testing.T) {
		_, err := svc.AddUser(models.UserInput{
			Username: "badrole", Name: "Bad Role", Password: "x", RoleIDs: []int64{99},
		}, testActor)
		assert.ErrorIs(t, err, models.ValidationError{})
	})
}

func TestUpdateUser(t *testing.T) {
	st := store.NewSeeded()
	svc := newIdentityService(st)

	t.Run("rename onto an existing username", func(t *testing.T) {
		_, err := svc.UpdateUser(models.UserInput{ID: 2, Username: "admin", Name: "Regular Employee"}, testActor)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("keeping one's own username is not a conflict", func(t *testing.T) {
		u, err := svc.UpdateUser(models.UserInput{
			ID: 2, Username: "user", Name: "Renamed Employee", DepartmentID: 3, RoleIDs: []int64{4},
		}, testActor)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Employee", u.Name)
		assert.Equal(t, int64(3), u.DepartmentID)
	})

	t.Run("empty password leaves the old one in place", func(t *testing.T) {
		_, err := svc.UpdateUser(models.UserInput{ID: 2, Username: "user", Name: "Renamed Employee"}, testActor)
		require.NoError(t, err)
		_, err = svc.Authenticate("user", "123456")
		assert.NoError(t, err)
	})

	t.Run("supplied password replaces the old one", func(t *testing.T) {
		_, err := svc.UpdateUser(models.UserInput{ID: 2, Username: "user", Name: "Renamed Employee", Password: "rotated"}, testActor)
		require.NoError(t, err)
		_, err = svc.Authenticate("user", "123456")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		_, err = svc.Authenticate("user", "rotated")
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateUser(models.UserInput{ID: 999, Username: "ghost", Name: "Ghost"}, testActor)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestResetPassword(t *testing.T) {
	st := store.NewSeeded()
	svc := newIdentityService(st)

	u, err := svc.AddUser(models.UserInput{Username: "temp", Name: "Temp", Password: "original"}, testActor)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(u.ID, testActor))

	_, err = svc.Authenticate("temp", "original")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, err = svc.Authenticate("temp", defaultPassword)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(999, testActor), models.ErrNotFound)
}

func TestUpdateUserStatus(t *testing.T) {
	st := store.NewSeeded()
	svc := newIdentityService(st)

	require.NoError(t, svc.UpdateUserStatus(2, "0", testActor))

	page := svc.ListUsers(store.Query{Status: "0"})
	require.Len(t, page.List, 1)
	assert.Equal(t, "user", page.List[0].Username)

	assert.ErrorIs(t, svc.UpdateUserStatus(999, "0", testActor), models.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc := newIdentityService(store.NewSeeded())

	require.NoError(t, svc.DeleteUser(3, testActor))
	assert.Equal(t, 2, svc.ListUsers(store.Query{}).Total)
	assert.ErrorIs(t, svc.DeleteUser(3, testActor), models.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	svc := newIdentityService(store.NewSeeded())

	tests := []struct {
		name          string
		query         store.Query
		wantUsernames []string
	}{
		{
			name:          "keyword matches username",
			query:         store.Query{Keyword: "admin"},
			wantUsernames: []string{"admin"},
		},
		{
			name:          "keyword matches email",
			query:         store.Query{Keyword: "finance@example.com"},
			wantUsernames: []string{"finance"},
		},
		{
			name:          "department filter",
			query:         store.Query{DepartmentID: 2},
			wantUsernames: []string{"user", "finance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := svc.ListUsers(tt.query)
			usernames := make([]string, len(page.List))
			for i, r := range page.List {
				usernames[i] = r.Username
			}
			assert.Equal(t, tt.wantUsernames, usernames)
		})
	}

	t.Run("rows carry the department name", func(t *testing.T) {
		page := svc.ListUsers(store.Query{Keyword: "admin"})
		require.Len(t, page.List, 1)
		assert.Equal(t, "Executive Office", page.List[0].Department)
	})
}

func TestDepartments(t *testing.T) {
	st := store.NewSeeded()
	svc := newIdentityService(st)

	t.Run("delete is blocked while users reference it", func(t *testing.T) {
		err := svc.DeleteDepartment(2, testActor)
		require.ErrorIs(t, err, models.ErrConflict)
		assert.EqualError(t, err, "department has assigned users")
	})

	t.Run("delete succeeds once unreferenced", func(t *testing.T) {
		require.NoError(t, svc.DeleteDepartment(5, testActor))
		assert.ErrorIs(t, svc.DeleteDepartment(5, testActor), models.ErrNotFound)
	})

	t.Run("add assigns the next id and defaults the status", func(t *testing.T) {
		id, err := svc.AddDepartment(models.DepartmentInput{Name: "Legal", Code: "LEGAL"}, testActor)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)

		page := svc.ListDepartments(store.Query{Keyword: "legal"})
		require.Len(t, page.List, 1)
		assert.Equal(t, models.StatusActive, page.List[0].Status)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, svc.UpdateDepartment(models.DepartmentInput{ID: 3, Name: "People Operations", Code: "HR"}, testActor))
		page := svc.ListDepartments(store.Query{Keyword: "people"})
		require.Len(t, page.List, 1)

		assert.ErrorIs(t, svc.UpdateDepartment(models.DepartmentInput{ID: 999, Name: "X"}, testActor), models.ErrNotFound)
	})
}

func TestRoles(t *testing.T) {
	st := store.NewSeeded()
	svc := newIdentityService(st)

	t.Run("delete is blocked while a user holds it", func(t *testing.T) {
		err := svc.DeleteRole(1, testActor)
		require.ErrorIs(t, err, models.ErrConflict)
		assert.EqualError(t, err, "role is assigned to users")
	})

	t.Run("delete succeeds for an unassigned role", func(t *testing.T) {
		require.NoError(t, svc.DeleteRole(2, testActor))
		assert.ErrorIs(t, svc.DeleteRole(2, testActor), models.ErrNotFound)
	})

	t.Run("add and update", func(t *testing.T) {
		id, err := svc.AddRole(models.RoleInput{
			Name: "Auditor", Code: "auditor", Permissions: []string{"contract:view", "payment:view"},
		}, testActor)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)

		require.NoError(t, svc.UpdateRole(models.RoleInput{
			ID: id, Name: "Internal Auditor", Code: "auditor", Permissions: []string{"contract:view"},
		}, testActor))

		page := svc.ListRoles(store.Query{Keyword: "auditor"})
		require.Len(t, page.List, 1)
		assert.Equal(t, "Internal Auditor", page.List[0].Name)
		assert.Equal(t, []string{"contract:view"}, page.List[0].Permissions)
	})
}
