package position_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"odyssey-hcm/internal/position"
	positionerrors "odyssey-hcm/internal/position/errors"
	"odyssey-hcm/internal/shared/apperror"
	"odyssey-hcm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePositionService struct {
	createFn  func(ctx context.Context, companyID string, req position.CreatePositionRequest) (position.PositionResponse, error)
	getAllFn  func(ctx context.Context, companyID string) ([]position.PositionResponse, error)
	getByIDFn func(ctx context.Context, companyID, id string) (position.PositionResponse, error)
	updateFn  func(ctx context.Context, companyID, id string, req position.UpdatePositionRequest) (position.PositionResponse, error)
	deleteFn  func(ctx context.Context, companyID, id string) error

	createCalls int
}

func (f *fakePositionService) Create(ctx context.Context, companyID string, req position.CreatePositionRequest) (position.PositionResponse, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, companyID, req)
	}
	return position.PositionResponse{}, nil
}

func (f *fakePositionService) GetAll(ctx context.Context, companyID string) ([]position.PositionResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakePositionService) GetByID(ctx context.Context, companyID, id string) (position.PositionResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, companyID, id)
	}
	return position.PositionResponse{}, nil
}

func (f *fakePositionService) Update(ctx context.Context, companyID, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, companyID, id, req)
	}
	return position.PositionResponse{}, nil
}

func (f *fakePositionService) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func newPositionRouter(svc position.Service, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	h := position.NewHandler(svc)
	r.POST("/positions", h.Create)
	r.GET("/positions", h.GetAll)
	r.GET("/positions/:id", h.GetById)
	r.PUT("/positions/:id", h.Update)
	r.DELETE("/positions/:id", h.Delete)
	return r
}

func decodePositionEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPositionHandler_Create(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("success returns the record under its department", func(t *testing.T) {
		departmentID := uuid.New().String()
		svc := &fakePositionService{
			createFn: func(ctx context.Context, cid string, req position.CreatePositionRequest) (position.PositionResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, departmentID, req.DepartmentID)
				return position.PositionResponse{
					ID:             uuid.New().String(),
					CompanyID:      cid,
					DepartmentID:   req.DepartmentID,
					DepartmentName: "Engineering",
					Name:           req.Name,
				}, nil
			},
		}
		router := newPositionRouter(svc, companyID)

		body := `{"name":"Backend Engineer","department_id":"` + departmentID + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodePositionEnvelope(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, w.Body.String(), "Engineering")
	})

	t.Run("department outside the company is rejected", func(t *testing.T) {
		svc := &fakePositionService{
			createFn: func(ctx context.Context, cid string, req position.CreatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{}, positionerrors.ErrInvalidDepartmentID
			},
		}
		router := newPositionRouter(svc, companyID)

		body := `{"name":"Backend Engineer","department_id":"` + uuid.New().String() + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodePositionEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
		assert.Contains(t, w.Body.String(), "Invalid department ID")
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		svc := &fakePositionService{}
		router := newPositionRouter(svc, companyID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "department_id")
		assert.Zero(t, svc.createCalls)
	})

	t.Run("unknown service failure is masked", func(t *testing.T) {
		svc := &fakePositionService{
			createFn: func(ctx context.Context, cid string, req position.CreatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{}, errors.New("dial tcp: connection refused")
			},
		}
		router := newPositionRouter(svc, companyID)

		body := `{"name":"Backend Engineer","department_id":"` + uuid.New().String() + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An unexpected error occurred")
		assert.NotContains(t, w.Body.String(), "dial tcp")
	})
}

func TestPositionHandler_GetAll(t *testing.T) {
	companyID := uuid.New().String()

	svc := &fakePositionService{
		getAllFn: func(ctx context.Context, cid string) ([]position.PositionResponse, error) {
			assert.Equal(t, companyID, cid)
			return []position.PositionResponse{
				{ID: uuid.New().String(), CompanyID: cid, DepartmentName: "Engineering", Name: "Backend Engineer"},
				{ID: uuid.New().String(), CompanyID: cid, DepartmentName: "People", Name: "HR Generalist"},
			}, nil
		},
	}
	router := newPositionRouter(svc, companyID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/positions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodePositionEnvelope(t, w)
	assert.True(t, env.Ok)

	raw, err := json.Marshal(env.Data)
	assert.NoError(t, err)
	var list []position.PositionResponse
	assert.NoError(t, json.Unmarshal(raw, &list))
	if assert.Len(t, list, 2) {
		assert.Equal(t, "Engineering", list[0].DepartmentName)
	}
}

func TestPositionHandler_GetByID(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("lookup is scoped to the caller's company", func(t *testing.T) {
		targetID := uuid.New().String()
		svc := &fakePositionService{
			getByIDFn: func(ctx context.Context, cid, id string) (position.PositionResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, targetID, id)
				return position.PositionResponse{}, positionerrors.ErrPositionNotFound
			},
		}
		router := newPositionRouter(svc, companyID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/positions/"+targetID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodePositionEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
	})
}

func TestPositionHandler_Update(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("success echoes the new name", func(t *testing.T) {
		targetID := uuid.New().String()
		departmentID := uuid.New().String()
		svc := &fakePositionService{
			updateFn: func(ctx context.Context, cid, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
				assert.Equal(t, targetID, id)
				return position.PositionResponse{ID: id, CompanyID: cid, DepartmentID: req.DepartmentID, Name: req.Name}, nil
			},
		}
		router := newPositionRouter(svc, companyID)

		body := `{"name":"Staff Engineer","department_id":"` + departmentID + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/positions/"+targetID, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Staff Engineer")
	})

	t.Run("cross company update is not found", func(t *testing.T) {
		svc := &fakePositionService{
			updateFn: func(ctx context.Context, cid, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{}, positionerrors.ErrPositionNotFound
			},
		}
		router := newPositionRouter(svc, companyID)

		body := `{"name":"Staff Engineer","department_id":"` + uuid.New().String() + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/positions/"+uuid.New().String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPositionHandler_Delete(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("success returns no content", func(t *testing.T) {
		var deletedID string
		svc := &fakePositionService{
			deleteFn: func(ctx context.Context, cid, id string) error {
				assert.Equal(t, companyID, cid)
				deletedID = id
				return nil
			},
		}
		router := newPositionRouter(svc, companyID)

		targetID := uuid.New().String()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/positions/"+targetID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, targetID, deletedID)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("missing position is not found", func(t *testing.T) {
		svc := &fakePositionService{
			deleteFn: func(ctx context.Context, cid, id string) error {
				return positionerrors.ErrPositionNotFound
			},
		}
		router := newPositionRouter(svc, companyID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/positions/"+uuid.New().String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
