package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	leaveerrors "odyssey-hcm/internal/leave/errors"
	"odyssey-hcm/internal/events"
	"odyssey-hcm/internal/messaging/kafka"
	"odyssey-hcm/internal/shared/contextutil"
	"odyssey-hcm/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	CreatePolicy(ctx context.Context, companyID string, req CreatePolicyRequest) (PolicyResponse, error)
	GetPolicies(ctx context.Context, companyID string) ([]PolicyResponse, error)
	GetPolicy(ctx context.Context, companyID, id string) (PolicyResponse, error)
	UpdatePolicy(ctx context.Context, companyID, id string, req UpdatePolicyRequest) (PolicyResponse, error)

	Submit(ctx context.Context, companyID, actorID string, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	GetAll(ctx context.Context, companyID string) ([]LeaveRequestResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveRequestResponse, error)
	Action(ctx context.Context, companyID, actorID, id string, req ActionLeaveRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, companyID, actorID, id string) (LeaveRequestResponse, error)

	GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]BalanceResponse, error)
	RecalculateBalance(ctx context.Context, companyID, employeeID, policyID string, year int) (BalanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger *Ledger
	engine workflow.Engine
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger *Ledger,
	engine workflow.Engine,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, ledger: ledger, engine: engine, outbox: outbox, logger: l}
}

func (s *service) CreatePolicy(ctx context.Context, companyID string, req CreatePolicyRequest) (PolicyResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PolicyResponse{}, leaveerrors.ErrInvalidCompanyID
	}

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	p := &LeavePolicy{
		ID:                     uuid.New(),
		CompanyID:              companyUUID,
		Name:                   req.Name,
		MinimumNoticeHours:     req.MinimumNoticeHours,
		RequiresApproval:       requiresApproval,
		AllowNegativeBalance:   req.AllowNegativeBalance,
		DefaultEntitlementDays: req.DefaultEntitlementDays,
		MaxCarryoverDays:       req.MaxCarryoverDays,
	}
	if err := s.repo.CreatePolicy(ctx, p); err != nil {
		s.logger.Error("create policy persist failed", zap.Error(err))
		return PolicyResponse{}, err
	}

	s.logger.Info("leave policy created",
		zap.String("policy_id", p.ID.String()),
		zap.String("company_id", companyID),
		zap.String("name", p.Name),
	)
	return mapPolicyToResponse(*p), nil
}

func (s *service) GetPolicies(ctx context.Context, companyID string) ([]PolicyResponse, error) {
	policies, err := s.repo.FindPolicies(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]PolicyResponse, len(policies))
	for i, p := range policies {
		resp[i] = mapPolicyToResponse(p)
	}
	return resp, nil
}

func (s *service) GetPolicy(ctx context.Context, companyID, id string) (PolicyResponse, error) {
	p, err := s.repo.FindPolicyByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PolicyResponse{}, leaveerrors.ErrPolicyNotFound
		}
		return PolicyResponse{}, err
	}
	return mapPolicyToResponse(*p), nil
}

func (s *service) UpdatePolicy(ctx context.Context, companyID, id string, req UpdatePolicyRequest) (PolicyResponse, error) {
	p, err := s.repo.FindPolicyByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PolicyResponse{}, leaveerrors.ErrPolicyNotFound
		}
		return PolicyResponse{}, err
	}

	inUse, err := s.repo.PolicyHasRequests(ctx, companyID, id)
	if err != nil {
		return PolicyResponse{}, err
	}
	if inUse {
		s.logger.Warn("policy update refused, policy in use",
			zap.String("policy_id", id),
			zap.String("company_id", companyID),
		)
		return PolicyResponse{}, leaveerrors.ErrPolicyInUse
	}

	p.Name = req.Name
	p.MinimumNoticeHours = req.MinimumNoticeHours
	if req.RequiresApproval != nil {
		p.RequiresApproval = *req.RequiresApproval
	}
	p.AllowNegativeBalance = req.AllowNegativeBalance
	p.DefaultEntitlementDays = req.DefaultEntitlementDays
	p.MaxCarryoverDays = req.MaxCarryoverDays

	if err := s.repo.UpdatePolicy(ctx, p); err != nil {
		s.logger.Error("update policy persist failed", zap.Error(err))
		return PolicyResponse{}, err
	}
	return mapPolicyToResponse(*p), nil
}

func (s *service) Submit(ctx context.Context, companyID, actorID string, req SubmitLeaveRequest) (LeaveRequestResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	policyUUID, err := uuid.Parse(req.PolicyID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidPolicyID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("submit leave employee company check failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if !belongs {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	policy, err := qtx.FindPolicyByID(ctx, companyID, req.PolicyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrPolicyNotFound
		}
		return LeaveRequestResponse{}, err
	}

	available := policy.DefaultEntitlementDays
	if b, err := qtx.FindBalance(ctx, companyID, req.EmployeeID, req.PolicyID, startDate.Year()); err == nil {
		available = b.Available
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return LeaveRequestResponse{}, err
	}

	days, fieldErrors := ValidateRequest(policy, available, RequestInput{
		Start:        startDate,
		End:          endDate,
		StartHalfDay: req.StartHalfDay,
		EndHalfDay:   req.EndHalfDay,
	}, time.Now())
	if len(fieldErrors) > 0 {
		s.logger.Warn("submit leave validation failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Any("violations", fieldErrors),
		)
		return LeaveRequestResponse{}, leaveerrors.ErrRequestValidation.WithDetails(fieldErrors)
	}

	r := &LeaveRequest{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeUUID,
		PolicyID:      policyUUID,
		StartDate:     startDate,
		EndDate:       endDate,
		StartHalfDay:  req.StartHalfDay,
		EndHalfDay:    req.EndHalfDay,
		DaysRequested: days,
		Reason:        req.Reason,
		Status:        StatusPending,
		CreatedBy:     actorUUID,
	}
	if err := qtx.CreateRequest(ctx, r); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if _, err := s.ledger.Apply(ctx, qtx, r, policy, TransitionSubmit); err != nil {
		return LeaveRequestResponse{}, err
	}

	if policy.RequiresApproval {
		managerID, err := qtx.GetEmployeeManager(ctx, companyID, req.EmployeeID)
		if err != nil {
			s.logger.Error("submit leave manager lookup failed", zap.Error(err))
			return LeaveRequestResponse{}, err
		}
		if managerID == nil {
			return LeaveRequestResponse{}, leaveerrors.ErrNoApproverConfigured
		}

		subject := s.newSubject(r, policy, actorUUID, "")
		if _, err := s.engine.Create(ctx, tx, companyID,
			subject,
			[]workflow.Approver{{ID: *managerID, Required: true}},
			workflow.DefaultOptions(),
		); err != nil {
			return LeaveRequestResponse{}, err
		}
		r.CurrentLevel = 1
		if err := qtx.UpdateRequest(ctx, r); err != nil {
			return LeaveRequestResponse{}, err
		}
	} else {
		// No approval chain configured on the policy: the submission is
		// its own approval.
		if err := s.finalizeDecision(ctx, tx, r, policy, StatusApproved, actorUUID, "auto-approved by policy"); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	s.ledger.InvalidateBalance(ctx, companyID, req.EmployeeID, req.PolicyID, startDate.Year())

	s.logger.Info("submit leave success",
		zap.String("leave_request_id", r.ID.String()),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("days_requested", days),
		zap.String("status", r.Status),
	)
	return mapRequestToResponse(*r), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindRequestsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]LeaveRequestResponse, len(requests))
	for i, r := range requests {
		resp[i] = mapRequestToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LeaveRequestResponse, error) {
	r, err := s.repo.FindRequestByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	return mapRequestToResponse(*r), nil
}

func (s *service) Action(ctx context.Context, companyID, actorID, id string, req ActionLeaveRequest) (LeaveRequestResponse, error) {
	s.logger.Debug("leave action requested",
		zap.String("leave_request_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("action", req.Action),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidActorID
	}
	if req.Action == string(workflow.DecisionReject) && req.Comments == "" {
		return LeaveRequestResponse{}, leaveerrors.ErrRejectCommentsRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave action begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindRequestByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	if r.Status != StatusPending {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestNotPending
	}

	policy, err := qtx.FindPolicyByID(ctx, companyID, r.PolicyID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrPolicyNotFound
		}
		return LeaveRequestResponse{}, err
	}

	subject := s.newSubject(r, policy, actorUUID, req.Comments)
	wfResp, err := s.engine.Act(ctx, tx, companyID, subject, actorID, workflow.Decision(req.Action), req.Comments)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	// Intermediate approvals advance the chain but leave the request
	// pending; the terminal hooks already persisted terminal states.
	if r.Status == StatusPending {
		r.CurrentLevel = wfResp.CurrentLevel
		if err := qtx.UpdateRequest(ctx, r); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave action commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	s.ledger.InvalidateBalance(ctx, companyID, r.EmployeeID.String(), r.PolicyID.String(), r.StartDate.Year())

	s.logger.Info("leave action success",
		zap.String("leave_request_id", id),
		zap.String("action", req.Action),
		zap.String("status", r.Status),
	)
	return mapRequestToResponse(*r), nil
}

func (s *service) Cancel(ctx context.Context, companyID, actorID, id string) (LeaveRequestResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindRequestByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	if r.EmployeeID != actorUUID && r.CreatedBy != actorUUID {
		return LeaveRequestResponse{}, leaveerrors.ErrNotRequestOwner
	}
	if r.Status != StatusPending {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestNotPending
	}

	policy, err := qtx.FindPolicyByID(ctx, companyID, r.PolicyID.String())
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	subject := s.newSubject(r, policy, actorUUID, "")
	if err := s.engine.Cancel(ctx, tx, companyID, subject); err != nil {
		return LeaveRequestResponse{}, err
	}

	r.Status = StatusCancelled
	if err := qtx.UpdateRequest(ctx, r); err != nil {
		return LeaveRequestResponse{}, err
	}
	if _, err := s.ledger.Apply(ctx, qtx, r, policy, TransitionCancel); err != nil {
		return LeaveRequestResponse{}, err
	}
	if err := s.enqueueDecidedEvent(ctx, tx, r, actorUUID); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	s.ledger.InvalidateBalance(ctx, companyID, r.EmployeeID.String(), r.PolicyID.String(), r.StartDate.Year())

	s.logger.Info("cancel leave success",
		zap.String("leave_request_id", id),
		zap.String("company_id", companyID),
	)
	return mapRequestToResponse(*r), nil
}

func (s *service) GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	policies, err := s.repo.FindPolicies(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]BalanceResponse, 0, len(policies))
	for i := range policies {
		b, err := s.ledger.GetBalance(ctx, &policies[i], companyID, employeeID, year)
		if err != nil {
			return nil, err
		}
		resp = append(resp, b)
	}
	return resp, nil
}

func (s *service) RecalculateBalance(ctx context.Context, companyID, employeeID, policyID string, year int) (BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("recalculate balance begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	policy, err := qtx.FindPolicyByID(ctx, companyID, policyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, leaveerrors.ErrPolicyNotFound
		}
		return BalanceResponse{}, err
	}

	b, err := s.ledger.Recalculate(ctx, qtx, policy, companyID, employeeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("recalculate balance commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	s.ledger.InvalidateBalance(ctx, companyID, employeeID, policyID, year)

	return mapBalanceToResponse(*b), nil
}

// leaveRequestSubject plugs a leave request into the approval engine. The
// terminal hooks run on the engine's transaction so the request row, the
// balance counters and the outbox event land with the workflow update.
type leaveRequestSubject struct {
	svc      *service
	req      *LeaveRequest
	policy   *LeavePolicy
	actorID  uuid.UUID
	comments string
}

func (s *service) newSubject(r *LeaveRequest, policy *LeavePolicy, actorID uuid.UUID, comments string) *leaveRequestSubject {
	return &leaveRequestSubject{svc: s, req: r, policy: policy, actorID: actorID, comments: comments}
}

func (sub *leaveRequestSubject) SubjectKind() string {
	return workflow.SubjectLeaveRequest
}

func (sub *leaveRequestSubject) SubjectRef() uuid.UUID {
	return sub.req.ID
}

func (sub *leaveRequestSubject) OnApproved(ctx context.Context, tx *sql.Tx) error {
	return sub.svc.finalizeDecision(ctx, tx, sub.req, sub.policy, StatusApproved, sub.actorID, sub.comments)
}

func (sub *leaveRequestSubject) OnRejected(ctx context.Context, tx *sql.Tx) error {
	return sub.svc.finalizeDecision(ctx, tx, sub.req, sub.policy, StatusRejected, sub.actorID, sub.comments)
}

func (s *service) finalizeDecision(
	ctx context.Context,
	tx *sql.Tx,
	r *LeaveRequest,
	policy *LeavePolicy,
	status string,
	decidedBy uuid.UUID,
	comments string,
) error {
	qtx := s.repo.WithTx(tx)

	now := time.Now()
	r.Status = status
	r.DecidedBy = &decidedBy
	r.DecidedAt = &now
	if comments != "" {
		r.DecisionComments = &comments
	}
	if err := qtx.UpdateRequest(ctx, r); err != nil {
		s.logger.Error("finalize leave decision persist failed",
			zap.String("leave_request_id", r.ID.String()),
			zap.String("status", status),
			zap.Error(err),
		)
		return err
	}

	transition := TransitionApprove
	if status == StatusRejected {
		transition = TransitionReject
	}
	if _, err := s.ledger.Apply(ctx, qtx, r, policy, transition); err != nil {
		return err
	}

	return s.enqueueDecidedEvent(ctx, tx, r, decidedBy)
}

func (s *service) enqueueDecidedEvent(ctx context.Context, tx *sql.Tx, r *LeaveRequest, decidedBy uuid.UUID) error {
	payload, err := json.Marshal(events.LeaveRequestDecidedEvent{
		EventType:      "leave_request." + r.Status,
		RequestID:      contextutil.GetRequestID(ctx),
		LeaveRequestID: r.ID.String(),
		CompanyID:      r.CompanyID.String(),
		EmployeeID:     r.EmployeeID.String(),
		Status:         r.Status,
		DaysRequested:  r.DaysRequested,
		DecidedBy:      decidedBy.String(),
		OccurredAt:     time.Now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   r.ID.String(),
		EventType:     "leave_request." + r.Status,
		Topic:         events.LeaveRequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapPolicyToResponse(p LeavePolicy) PolicyResponse {
	return PolicyResponse{
		ID:                     p.ID.String(),
		CompanyID:              p.CompanyID.String(),
		Name:                   p.Name,
		MinimumNoticeHours:     p.MinimumNoticeHours,
		RequiresApproval:       p.RequiresApproval,
		AllowNegativeBalance:   p.AllowNegativeBalance,
		DefaultEntitlementDays: p.DefaultEntitlementDays,
		MaxCarryoverDays:       p.MaxCarryoverDays,
	}
}

func mapRequestToResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:               r.ID.String(),
		CompanyID:        r.CompanyID.String(),
		EmployeeID:       r.EmployeeID.String(),
		PolicyID:         r.PolicyID.String(),
		StartDate:        r.StartDate.Format("2006-01-02"),
		EndDate:          r.EndDate.Format("2006-01-02"),
		StartHalfDay:     r.StartHalfDay,
		EndHalfDay:       r.EndHalfDay,
		DaysRequested:    r.DaysRequested,
		Reason:           r.Reason,
		Status:           r.Status,
		CurrentLevel:     r.CurrentLevel,
		CreatedBy:        r.CreatedBy.String(),
		DecisionComments: r.DecisionComments,
	}
	if r.DecidedBy != nil {
		v := r.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapBalanceToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:  b.EmployeeID.String(),
		PolicyID:    b.PolicyID.String(),
		Year:        b.Year,
		Entitlement: b.Entitlement,
		Accrued:     b.Accrued,
		Used:        b.Used,
		Pending:     b.Pending,
		Carryover:   b.Carryover,
		Available:   b.Available,
	}
}
