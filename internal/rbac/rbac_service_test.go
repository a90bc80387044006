package rbac_test

import (
	"testing"

	"odyssey-hcm/internal/domain"
	"odyssey-hcm/internal/rbac"
	rbacerrors "odyssey-hcm/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRBACRepository struct {
	employeeRoles   []rbac.EmployeeRoleRow
	rolePermissions []rbac.RolePermissionRow

	roles       map[string]*rbac.RoleRow
	rolePermIDs map[string][]string
	permissions []rbac.PermissionRow
}

func newFakeRBACRepository() *fakeRBACRepository {
	return &fakeRBACRepository{
		roles:       make(map[string]*rbac.RoleRow),
		rolePermIDs: make(map[string][]string),
	}
}

func (f *fakeRBACRepository) GetEmployeeRoles(companyID string) ([]rbac.EmployeeRoleRow, error) {
	return f.employeeRoles, nil
}

func (f *fakeRBACRepository) GetRolePermissions(companyID string) ([]rbac.RolePermissionRow, error) {
	return f.rolePermissions, nil
}

func (f *fakeRBACRepository) ListRoles(companyID string) ([]rbac.RoleRow, error) {
	var out []rbac.RoleRow
	for _, r := range f.roles {
		if r.CompanyID == companyID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRBACRepository) GetRoleByID(id string) (*rbac.RoleRow, error) {
	if r, ok := f.roles[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRBACRepository) GetRoleByName(companyID, name string) (*rbac.RoleRow, error) {
	for _, r := range f.roles {
		if r.CompanyID == companyID && r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRBACRepository) CreateRole(role *rbac.RoleRow) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRBACRepository) UpdateRole(role *rbac.RoleRow) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRBACRepository) DeleteRole(id string) error {
	delete(f.roles, id)
	return nil
}

func (f *fakeRBACRepository) ListPermissions() ([]rbac.PermissionRow, error) {
	return f.permissions, nil
}

func (f *fakeRBACRepository) GetPermissionsByRoleID(roleID string) ([]rbac.PermissionRow, error) {
	var out []rbac.PermissionRow
	for _, id := range f.rolePermIDs[roleID] {
		out = append(out, rbac.PermissionRow{ID: id})
	}
	return out, nil
}

func (f *fakeRBACRepository) UpdateRolePermissions(roleID string, permIDs []string) error {
	f.rolePermIDs[roleID] = permIDs
	return nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	modelText := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	return e
}

func TestRBACService_Enforce(t *testing.T) {
	repo := newFakeRBACRepository()
	repo.employeeRoles = []rbac.EmployeeRoleRow{
		{EmployeeID: "emp-1", RoleID: "role-owner"},
	}
	repo.rolePermissions = []rbac.RolePermissionRow{
		{RoleID: "role-owner", Resource: "employee", Action: "read"},
	}

	service := rbac.NewService(repo, newTestEnforcer(t))

	allowed, err := service.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		Resource:   "employee",
		Action:     "read",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := service.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		Resource:   "salary",
		Action:     "delete",
	})
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestRBACService_Roles(t *testing.T) {
	t.Run("create and read back", func(t *testing.T) {
		repo := newFakeRBACRepository()
		service := rbac.NewService(repo, newTestEnforcer(t))

		created, err := service.CreateRole("company-1", domain.CreateRoleRequest{
			Name:        "HR",
			Description: "Human resources",
			Permissions: []string{"perm-1", "perm-2"},
		})
		assert.NoError(t, err)
		assert.Len(t, created.Permissions, 2)

		got, err := service.GetRole("company-1", created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "HR", got.Name)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := newFakeRBACRepository()
		service := rbac.NewService(repo, newTestEnforcer(t))

		_, err := service.CreateRole("company-1", domain.CreateRoleRequest{Name: "HR"})
		assert.NoError(t, err)

		_, err = service.CreateRole("company-1", domain.CreateRoleRequest{Name: "HR"})
		assert.ErrorIs(t, err, rbacerrors.ErrRoleNameTaken)
	})

	t.Run("roles are tenant scoped", func(t *testing.T) {
		repo := newFakeRBACRepository()
		service := rbac.NewService(repo, newTestEnforcer(t))

		created, err := service.CreateRole("company-1", domain.CreateRoleRequest{Name: "HR"})
		assert.NoError(t, err)

		_, err = service.GetRole("company-2", created.ID)
		assert.ErrorIs(t, err, rbacerrors.ErrRoleNotFound)

		err = service.DeleteRole("company-2", created.ID)
		assert.ErrorIs(t, err, rbacerrors.ErrRoleNotFound)
	})

	t.Run("update replaces permissions", func(t *testing.T) {
		repo := newFakeRBACRepository()
		service := rbac.NewService(repo, newTestEnforcer(t))

		created, err := service.CreateRole("company-1", domain.CreateRoleRequest{
			Name:        "HR",
			Permissions: []string{"perm-1"},
		})
		assert.NoError(t, err)

		updated, err := service.UpdateRole("company-1", created.ID, domain.UpdateRoleRequest{
			Description: "People team",
			Permissions: []string{"perm-2", "perm-3"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "People team", updated.Description)
		assert.Equal(t, []string{"perm-2", "perm-3"}, updated.Permissions)
	})
}
