package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"odyssey-hcm/internal/auth"
	autherrors "odyssey-hcm/internal/auth/errors"
)

type fakeAuthService struct {
	loginFn        func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error)
	refreshTokenFn func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error)
	getMeFn        func(ctx context.Context, userID string) (*auth.AuthResponse, error)
	registerFn     func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)

	registerCalls int
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return "", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
	if f.refreshTokenFn != nil {
		return f.refreshTokenFn(ctx, refreshToken)
	}
	return "", "", auth.AuthResponse{}, autherrors.ErrInvalidRefreshToken
}

func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (*auth.AuthResponse, error) {
	if f.getMeFn != nil {
		return f.getMeFn(ctx, userID)
	}
	return nil, autherrors.ErrUserNotFound
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	f.registerCalls++
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return auth.AuthResponse{}, nil
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("web client gets session cookies", func(t *testing.T) {
		service := &fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "test@example.com", email)
				return "access-token", "refresh-token", auth.AuthResponse{
					ID:        "user-1",
					Email:     email,
					CompanyID: "comp-1",
				}, nil
			},
		}
		handler := auth.NewHandler(service)
		router := setupAuthRouter()
		router.POST("/login", handler.Login)

		body, _ := json.Marshal(auth.LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "web")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 2)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)
		assert.Equal(t, "refresh_token", cookies[1].Name)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "test@example.com", data["user"].(map[string]interface{})["email"])
		assert.Equal(t, "access-token", data["access_token"])
	})

	t.Run("mobile client gets no cookies", func(t *testing.T) {
		service := &fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "access-token", "refresh-token", auth.AuthResponse{Email: email}, nil
			},
		}
		handler := auth.NewHandler(service)
		router := setupAuthRouter()
		router.POST("/login", handler.Login)

		body, _ := json.Marshal(auth.LoginRequest{Email: "test@example.com", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "mobile")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		handler := auth.NewHandler(&fakeAuthService{})
		router := setupAuthRouter()
		router.POST("/login", handler.Login)

		body, _ := json.Marshal(auth.LoginRequest{Email: "wrong@test.com", Password: "123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	employeeID := uuid.New()
	companyID := uuid.New()

	t.Run("success", func(t *testing.T) {
		service := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{Email: req.Email, Name: req.Name}, nil
			},
		}
		handler := auth.NewHandler(service)
		router := setupAuthRouter()
		router.POST("/register", handler.Register)

		body, _ := json.Marshal(auth.RegisterRequest{
			Email:      "new@example.com",
			Name:       "New User",
			Password:   "newpassword",
			EmployeeID: employeeID.String(),
			CompanyID:  companyID.String(),
		})
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation failure never reaches the service", func(t *testing.T) {
		service := &fakeAuthService{}
		handler := auth.NewHandler(service)
		router := setupAuthRouter()
		router.POST("/register", handler.Register)

		body := []byte(`{"email": "invalid-email", "name": ""}`)
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, service.registerCalls)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		service := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}
		handler := auth.NewHandler(service)
		router := setupAuthRouter()
		router.POST("/register", handler.Register)

		body, _ := json.Marshal(auth.RegisterRequest{
			Email:      "exists@example.com",
			Name:       "Existing User",
			Password:   "password123",
			EmployeeID: employeeID.String(),
			CompanyID:  companyID.String(),
		})
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("mobile client sends token in the body", func(t *testing.T) {
		service := &fakeAuthService{
			refreshTokenFn: func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "old-refresh", refreshToken)
				return "new-access", "new-refresh", auth.AuthResponse{Email: "test@example.com"}, nil
			},
		}
		handler := auth.NewHandler(service)
		router := setupAuthRouter()
		router.POST("/refresh", handler.RefreshToken)

		req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewBufferString(`{"refresh_token":"old-refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "mobile")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("web client without cookie is rejected", func(t *testing.T) {
		handler := auth.NewHandler(&fakeAuthService{})
		router := setupAuthRouter()
		router.POST("/refresh", handler.RefreshToken)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "web")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
