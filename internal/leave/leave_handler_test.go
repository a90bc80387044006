package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"odyssey-hcm/internal/leave"
	leaveerrors "odyssey-hcm/internal/leave/errors"
	"odyssey-hcm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createPolicyFn       func(ctx context.Context, companyID string, req leave.CreatePolicyRequest) (leave.PolicyResponse, error)
	getPoliciesFn        func(ctx context.Context, companyID string) ([]leave.PolicyResponse, error)
	getPolicyFn          func(ctx context.Context, companyID, id string) (leave.PolicyResponse, error)
	updatePolicyFn       func(ctx context.Context, companyID, id string, req leave.UpdatePolicyRequest) (leave.PolicyResponse, error)
	submitFn             func(ctx context.Context, companyID, actorID string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error)
	getAllFn             func(ctx context.Context, companyID string) ([]leave.LeaveRequestResponse, error)
	getByIDFn            func(ctx context.Context, companyID, id string) (leave.LeaveRequestResponse, error)
	actionFn             func(ctx context.Context, companyID, actorID, id string, req leave.ActionLeaveRequest) (leave.LeaveRequestResponse, error)
	cancelFn             func(ctx context.Context, companyID, actorID, id string) (leave.LeaveRequestResponse, error)
	getBalancesFn        func(ctx context.Context, companyID, employeeID string, year int) ([]leave.BalanceResponse, error)
	recalculateBalanceFn func(ctx context.Context, companyID, employeeID, policyID string, year int) (leave.BalanceResponse, error)
}

func (f *fakeLeaveService) CreatePolicy(ctx context.Context, companyID string, req leave.CreatePolicyRequest) (leave.PolicyResponse, error) {
	return f.createPolicyFn(ctx, companyID, req)
}
func (f *fakeLeaveService) GetPolicies(ctx context.Context, companyID string) ([]leave.PolicyResponse, error) {
	return f.getPoliciesFn(ctx, companyID)
}
func (f *fakeLeaveService) GetPolicy(ctx context.Context, companyID, id string) (leave.PolicyResponse, error) {
	return f.getPolicyFn(ctx, companyID, id)
}
func (f *fakeLeaveService) UpdatePolicy(ctx context.Context, companyID, id string, req leave.UpdatePolicyRequest) (leave.PolicyResponse, error) {
	return f.updatePolicyFn(ctx, companyID, id, req)
}
func (f *fakeLeaveService) Submit(ctx context.Context, companyID, actorID string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	return f.submitFn(ctx, companyID, actorID, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, companyID string) ([]leave.LeaveRequestResponse, error) {
	return f.getAllFn(ctx, companyID)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, companyID, id string) (leave.LeaveRequestResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}
func (f *fakeLeaveService) Action(ctx context.Context, companyID, actorID, id string, req leave.ActionLeaveRequest) (leave.LeaveRequestResponse, error) {
	return f.actionFn(ctx, companyID, actorID, id, req)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, companyID, actorID, id string) (leave.LeaveRequestResponse, error) {
	return f.cancelFn(ctx, companyID, actorID, id)
}
func (f *fakeLeaveService) GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]leave.BalanceResponse, error) {
	return f.getBalancesFn(ctx, companyID, employeeID, year)
}
func (f *fakeLeaveService) RecalculateBalance(ctx context.Context, companyID, employeeID, policyID string, year int) (leave.BalanceResponse, error) {
	return f.recalculateBalanceFn(ctx, companyID, employeeID, policyID, year)
}

func TestLeaveHandler_Submit(t *testing.T) {
	apperror.Init()
	t.Run("success uses user_id_validated fallback", func(t *testing.T) {
		companyID := uuid.New().String()
		actorID := uuid.New().String()
		employeeID := uuid.New().String()
		policyID := uuid.New().String()

		svc := &fakeLeaveService{
			submitFn: func(ctx context.Context, cid, aid string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, actorID, aid)
				assert.Equal(t, employeeID, req.EmployeeID)
				return leave.LeaveRequestResponse{
					ID:            uuid.New().String(),
					CompanyID:     cid,
					EmployeeID:    req.EmployeeID,
					PolicyID:      req.PolicyID,
					StartDate:     req.StartDate,
					EndDate:       req.EndDate,
					DaysRequested: 2.5,
					Status:        leave.StatusPending,
					CurrentLevel:  1,
					CreatedBy:     aid,
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + employeeID + `","policy_id":"` + policyID + `","start_date":"2026-03-10","end_date":"2026-03-12","start_half_day":true}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", companyID)
		c.Set("user_id_validated", actorID)

		h.Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveRequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 2.5, got.DaysRequested)
		assert.Equal(t, leave.StatusPending, got.Status)
		assert.Equal(t, actorID, got.CreatedBy)
	})

	t.Run("bind error reports every missing field", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/requests", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)

		var fields map[string]string
		assert.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		assert.Contains(t, fields, "employee_id")
		assert.Contains(t, fields, "policy_id")
		assert.Contains(t, fields, "start_date")
		assert.Contains(t, fields, "end_date")
	})

	t.Run("validation error keeps the field map in the envelope", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(ctx context.Context, cid, aid string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
				return leave.LeaveRequestResponse{}, leaveerrors.ErrRequestValidation.WithDetails(map[string]string{
					"start_date": "requests require at least 48 hours notice",
					"balance":    "insufficient balance: available 5, requested 6",
				})
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","policy_id":"` + uuid.New().String() + `","start_date":"2026-03-10","end_date":"2026-03-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())
		c.Set("employee_id", uuid.New().String())

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)

		var fields map[string]string
		assert.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		assert.Len(t, fields, 2)
	})

	t.Run("unknown error collapses to internal", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(ctx context.Context, cid, aid string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
				return leave.LeaveRequestResponse{}, errors.New("connection reset")
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","policy_id":"` + uuid.New().String() + `","start_date":"2026-03-10","end_date":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())
		c.Set("employee_id", uuid.New().String())

		h.Submit(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Equal(t, "An unexpected error occurred", env.Error.Message)
	})
}

func TestLeaveHandler_Action(t *testing.T) {
	t.Run("approve passes through", func(t *testing.T) {
		requestID := uuid.New().String()
		svc := &fakeLeaveService{
			actionFn: func(ctx context.Context, cid, aid, id string, req leave.ActionLeaveRequest) (leave.LeaveRequestResponse, error) {
				assert.Equal(t, requestID, id)
				assert.Equal(t, "approve", req.Action)
				return leave.LeaveRequestResponse{ID: id, Status: leave.StatusApproved}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/requests/"+requestID+"/action", strings.NewReader(`{"action":"approve"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: requestID}}
		c.Set("company_id", uuid.New().String())
		c.Set("employee_id", uuid.New().String())

		h.Action(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("unknown action fails binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/requests/x/action", strings.NewReader(`{"action":"escalate"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Action(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})

	t.Run("reject without comments is a bad request", func(t *testing.T) {
		svc := &fakeLeaveService{
			actionFn: func(ctx context.Context, cid, aid, id string, req leave.ActionLeaveRequest) (leave.LeaveRequestResponse, error) {
				return leave.LeaveRequestResponse{}, leaveerrors.ErrRejectCommentsRequired
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/requests/x/action", strings.NewReader(`{"action":"reject"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())
		c.Set("employee_id", uuid.New().String())

		h.Action(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Equal(t, "comments are required when rejecting", env.Error.Message)
	})
}

func TestLeaveHandler_GetBalances(t *testing.T) {
	t.Run("defaults to the calling employee and current year", func(t *testing.T) {
		companyID := uuid.New().String()
		actorID := uuid.New().String()

		svc := &fakeLeaveService{
			getBalancesFn: func(ctx context.Context, cid, eid string, year int) ([]leave.BalanceResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, actorID, eid)
				return []leave.BalanceResponse{{EmployeeID: eid, Year: year, Available: 7.5}}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/balances", nil)
		c.Set("company_id", companyID)
		c.Set("employee_id", actorID)

		h.GetBalances(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got []leave.BalanceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, 7.5, got[0].Available)
	})

	t.Run("explicit employee and year are forwarded", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			getBalancesFn: func(ctx context.Context, cid, eid string, year int) ([]leave.BalanceResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, 2025, year)
				return nil, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/balances?employee_id="+employeeID+"&year=2025", nil)
		c.Set("company_id", uuid.New().String())
		c.Set("employee_id", uuid.New().String())

		h.GetBalances(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
