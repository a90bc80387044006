package leave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	leaveerrors "odyssey-hcm/internal/leave/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Transition names the request lifecycle changes the ledger reacts to.
type Transition string

const (
	TransitionSubmit  Transition = "submit"
	TransitionApprove Transition = "approve"
	TransitionReject  Transition = "reject"
	TransitionCancel  Transition = "cancel"
)

const balanceCacheTTL = 10 * time.Minute

func balanceCacheKey(companyID, employeeID, policyID string, year int) string {
	return fmt.Sprintf("leave:balance:%s:%s:%s:%d", companyID, employeeID, policyID, year)
}

// Ledger owns balance consistency. Nothing at the database level enforces
// the available = entitlement + carryover - used - pending invariant, so
// every request lifecycle transition must pass through Apply, inside the
// same transaction that moves the request.
type Ledger struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewLedger(repo Repository, rdb *redis.Client, logger ...*zap.Logger) *Ledger {
	l := zap.L().Named("leave.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.ledger")
	}
	return &Ledger{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// Apply mutates exactly the counters the transition calls for:
//
//	submit  : pending += days
//	approve : pending -= days, used += days
//	reject  : pending -= days
//	cancel  : pending -= days
//
// When the resulting available would go negative and the policy forbids it,
// the whole mutation is refused with a domain error; values are never
// clamped. Runs on the caller's transaction via qtx.
func (l *Ledger) Apply(
	ctx context.Context,
	qtx Repository,
	req *LeaveRequest,
	policy *LeavePolicy,
	t Transition,
) (*LeaveBalance, error) {
	year := req.StartDate.Year()
	b, err := l.loadOrInitForUpdate(ctx, qtx, req, policy, year)
	if err != nil {
		return nil, err
	}

	switch t {
	case TransitionSubmit:
		b.Pending += req.DaysRequested
	case TransitionApprove:
		b.Pending -= req.DaysRequested
		b.Used += req.DaysRequested
	case TransitionReject, TransitionCancel:
		b.Pending -= req.DaysRequested
	default:
		return nil, fmt.Errorf("unknown balance transition: %s", t)
	}
	b.computeAvailable()

	if b.Available < 0 && !policy.AllowNegativeBalance {
		l.logger.Warn("balance transition refused",
			zap.String("employee_id", req.EmployeeID.String()),
			zap.String("policy_id", policy.ID.String()),
			zap.String("transition", string(t)),
			zap.Float64("available", b.Available+req.DaysRequested),
			zap.Float64("requested", req.DaysRequested),
		)
		return nil, leaveerrors.ErrInsufficientBalance.WithDetails(map[string]string{
			"available": formatDays(b.Available + req.DaysRequested),
			"requested": formatDays(req.DaysRequested),
		})
	}

	if err := qtx.SaveBalance(ctx, b); err != nil {
		l.logger.Error("balance persist failed",
			zap.String("employee_id", req.EmployeeID.String()),
			zap.String("transition", string(t)),
			zap.Error(err),
		)
		return nil, err
	}

	return b, nil
}

// Recalculate rebuilds used/pending/available from the authoritative set of
// requests for the policy-year and persists the result. This is the only
// path allowed to silently repair drift, and it is idempotent.
func (l *Ledger) Recalculate(
	ctx context.Context,
	qtx Repository,
	policy *LeavePolicy,
	companyID, employeeID string,
	year int,
) (*LeaveBalance, error) {
	b, err := qtx.FindBalanceForUpdate(ctx, companyID, employeeID, policy.ID.String(), year)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		b = newBalanceFromPolicy(policy, companyID, employeeID, year)
	}

	used, err := qtx.SumRequestDays(ctx, companyID, employeeID, policy.ID.String(), year, StatusApproved)
	if err != nil {
		return nil, err
	}
	pending, err := qtx.SumRequestDays(ctx, companyID, employeeID, policy.ID.String(), year, StatusPending)
	if err != nil {
		return nil, err
	}

	b.Used = used
	b.Pending = pending
	b.computeAvailable()

	if err := qtx.SaveBalance(ctx, b); err != nil {
		l.logger.Error("balance recalculate persist failed",
			zap.String("employee_id", employeeID),
			zap.String("policy_id", policy.ID.String()),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil, err
	}

	l.logger.Info("balance recalculated",
		zap.String("employee_id", employeeID),
		zap.String("policy_id", policy.ID.String()),
		zap.Int("year", year),
		zap.Float64("used", used),
		zap.Float64("pending", pending),
		zap.Float64("available", b.Available),
	)

	return b, nil
}

// GetBalance is the read path: Redis first, then the database behind a
// singleflight so a balance-widget storm produces one query.
func (l *Ledger) GetBalance(
	ctx context.Context,
	policy *LeavePolicy,
	companyID, employeeID string,
	year int,
) (BalanceResponse, error) {
	cacheKey := balanceCacheKey(companyID, employeeID, policy.ID.String(), year)

	if l.rdb != nil {
		if cached, err := l.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp BalanceResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := l.sf.Do(cacheKey, func() (interface{}, error) {
		b, err := l.repo.FindBalance(ctx, companyID, employeeID, policy.ID.String(), year)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			b = newBalanceFromPolicy(policy, companyID, employeeID, year)
		}
		resp := mapBalanceToResponse(*b)

		if l.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				l.rdb.Set(ctx, cacheKey, jsonData, balanceCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return BalanceResponse{}, err
	}

	return v.(BalanceResponse), nil
}

// InvalidateBalance drops the cached view after a committed mutation.
// Cache trouble is logged, never surfaced.
func (l *Ledger) InvalidateBalance(ctx context.Context, companyID, employeeID, policyID string, year int) {
	if l.rdb == nil {
		return
	}
	cacheKey := balanceCacheKey(companyID, employeeID, policyID, year)
	if err := l.rdb.Del(ctx, cacheKey).Err(); err != nil {
		l.logger.Error("balance cache invalidation failed",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func (l *Ledger) loadOrInitForUpdate(
	ctx context.Context,
	qtx Repository,
	req *LeaveRequest,
	policy *LeavePolicy,
	year int,
) (*LeaveBalance, error) {
	b, err := qtx.FindBalanceForUpdate(ctx, req.CompanyID.String(), req.EmployeeID.String(), policy.ID.String(), year)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return newBalanceFromPolicy(policy, req.CompanyID.String(), req.EmployeeID.String(), year), nil
}

// newBalanceFromPolicy seeds a first-touch balance row for the policy-year.
// Callers have already validated the IDs.
func newBalanceFromPolicy(policy *LeavePolicy, companyID, employeeID string, year int) *LeaveBalance {
	cid, _ := uuid.Parse(companyID)
	eid, _ := uuid.Parse(employeeID)
	b := &LeaveBalance{
		CompanyID:   cid,
		EmployeeID:  eid,
		PolicyID:    policy.ID,
		Year:        year,
		Entitlement: policy.DefaultEntitlementDays,
		Accrued:     policy.DefaultEntitlementDays,
	}
	b.computeAvailable()
	return b
}
