package leave

import (
	"context"
	"database/sql"

	"odyssey-hcm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreatePolicy(ctx context.Context, p *LeavePolicy) error
	FindPolicies(ctx context.Context, companyID string) ([]LeavePolicy, error)
	FindPolicyByID(ctx context.Context, companyID, id string) (*LeavePolicy, error)
	UpdatePolicy(ctx context.Context, p *LeavePolicy) error
	PolicyHasRequests(ctx context.Context, companyID, policyID string) (bool, error)

	CreateRequest(ctx context.Context, r *LeaveRequest) error
	FindRequestsByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error)
	FindRequestByID(ctx context.Context, companyID, id string) (*LeaveRequest, error)
	UpdateRequest(ctx context.Context, r *LeaveRequest) error

	FindBalance(ctx context.Context, companyID, employeeID, policyID string, year int) (*LeaveBalance, error)
	FindBalanceForUpdate(ctx context.Context, companyID, employeeID, policyID string, year int) (*LeaveBalance, error)
	SaveBalance(ctx context.Context, b *LeaveBalance) error
	SumRequestDays(ctx context.Context, companyID, employeeID, policyID string, year int, status string) (float64, error)

	GetEmployeeManager(ctx context.Context, companyID, employeeID string) (*uuid.UUID, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreatePolicy(ctx context.Context, p *LeavePolicy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindPolicies(ctx context.Context, companyID string) ([]LeavePolicy, error) {
	var policies []LeavePolicy
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&policies).Error
	return policies, err
}

func (r *repository) FindPolicyByID(ctx context.Context, companyID, id string) (*LeavePolicy, error) {
	var p LeavePolicy
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) UpdatePolicy(ctx context.Context, p *LeavePolicy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) PolicyHasRequests(ctx context.Context, companyID, policyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(companyID)).
		Where("policy_id = ?", policyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindRequestsByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("start_date DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindRequestByID(ctx context.Context, companyID, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) UpdateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) FindBalance(ctx context.Context, companyID, employeeID, policyID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("policy_id = ?", policyID).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

// FindBalanceForUpdate takes a row lock so concurrent lifecycle transitions
// against the same balance serialize instead of losing updates.
func (r *repository) FindBalanceForUpdate(ctx context.Context, companyID, employeeID, policyID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("policy_id = ?", policyID).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

func (r *repository) SaveBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) SumRequestDays(ctx context.Context, companyID, employeeID, policyID string, year int, status string) (float64, error) {
	var total sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("SUM(days_requested)").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("policy_id = ?", policyID).
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		Where("status = ?", status).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (r *repository) GetEmployeeManager(ctx context.Context, companyID, employeeID string) (*uuid.UUID, error) {
	var row struct {
		ManagerID *uuid.UUID
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("manager_id").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Scan(&row).Error
	return row.ManagerID, err
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
