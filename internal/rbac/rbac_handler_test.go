package rbac_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"odyssey-hcm/internal/domain"
	"odyssey-hcm/internal/rbac"
	rbacerrors "odyssey-hcm/internal/rbac/errors"
	"odyssey-hcm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBACService struct {
	enforceFn    func(req domain.EnforceRequest) (bool, error)
	listRolesFn  func(companyID string) ([]domain.RoleResponse, error)
	getRoleFn    func(companyID, id string) (*domain.RoleResponse, error)
	createRoleFn func(companyID string, req domain.CreateRoleRequest) (*domain.RoleResponse, error)
	updateRoleFn func(companyID, id string, req domain.UpdateRoleRequest) (*domain.RoleResponse, error)
	deleteRoleFn func(companyID, id string) error
	listPermsFn  func() ([]domain.PermissionResponse, error)
}

func (f *fakeRBACService) LoadCompanyPolicy(companyID string) error { return nil }

func (f *fakeRBACService) Enforce(req domain.EnforceRequest) (bool, error) {
	if f.enforceFn != nil {
		return f.enforceFn(req)
	}
	return false, nil
}

func (f *fakeRBACService) ListRoles(companyID string) ([]domain.RoleResponse, error) {
	if f.listRolesFn != nil {
		return f.listRolesFn(companyID)
	}
	return nil, nil
}

func (f *fakeRBACService) GetRole(companyID, id string) (*domain.RoleResponse, error) {
	if f.getRoleFn != nil {
		return f.getRoleFn(companyID, id)
	}
	return nil, rbacerrors.ErrRoleNotFound
}

func (f *fakeRBACService) CreateRole(companyID string, req domain.CreateRoleRequest) (*domain.RoleResponse, error) {
	if f.createRoleFn != nil {
		return f.createRoleFn(companyID, req)
	}
	return nil, nil
}

func (f *fakeRBACService) UpdateRole(companyID, id string, req domain.UpdateRoleRequest) (*domain.RoleResponse, error) {
	if f.updateRoleFn != nil {
		return f.updateRoleFn(companyID, id, req)
	}
	return nil, nil
}

func (f *fakeRBACService) DeleteRole(companyID, id string) error {
	if f.deleteRoleFn != nil {
		return f.deleteRoleFn(companyID, id)
	}
	return nil
}

func (f *fakeRBACService) ListPermissions() ([]domain.PermissionResponse, error) {
	if f.listPermsFn != nil {
		return f.listPermsFn()
	}
	return nil, nil
}

func setupRBACRouter(service rbac.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := rbac.NewHandler(service)

	router.POST("/rbac/enforce", handler.Enforce)
	router.GET("/rbac/roles/:id", func(c *gin.Context) {
		c.Set("company_id", "company-1")
		handler.GetRole(c)
	})
	router.POST("/rbac/roles", func(c *gin.Context) {
		c.Set("company_id", "company-1")
		handler.CreateRole(c)
	})

	return router
}

func TestRBACHandler_Enforce(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		service := &fakeRBACService{
			enforceFn: func(req domain.EnforceRequest) (bool, error) {
				assert.Equal(t, "emp-1", req.EmployeeID)
				assert.Equal(t, "employee", req.Resource)
				return true, nil
			},
		}
		router := setupRBACRouter(service)

		body, _ := json.Marshal(domain.EnforceRequest{
			EmployeeID: "emp-1",
			CompanyID:  "company-1",
			Resource:   "employee",
			Action:     "read",
		})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)

		var resp domain.EnforceResponse
		raw, _ := json.Marshal(envelope.Data)
		assert.NoError(t, json.Unmarshal(raw, &resp))
		assert.True(t, resp.Allowed)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		router := setupRBACRouter(&fakeRBACService{})

		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"employee_id":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRBACHandler_Roles(t *testing.T) {
	t.Run("get role not found", func(t *testing.T) {
		router := setupRBACRouter(&fakeRBACService{})

		req := httptest.NewRequest(http.MethodGet, "/rbac/roles/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var envelope response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
	})

	t.Run("create role", func(t *testing.T) {
		service := &fakeRBACService{
			createRoleFn: func(companyID string, req domain.CreateRoleRequest) (*domain.RoleResponse, error) {
				assert.Equal(t, "company-1", companyID)
				return &domain.RoleResponse{ID: "role-1", Name: req.Name, Permissions: req.Permissions}, nil
			},
		}
		router := setupRBACRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/rbac/roles", bytes.NewBufferString(`{"name":"HR","permissions":["perm-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var envelope response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
	})
}
