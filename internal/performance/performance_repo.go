package performance

import (
	"context"
	"database/sql"

	"odyssey-hcm/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=performance_repo.go -destination=mock/performance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateGoal(ctx context.Context, g *Goal) error
	FindGoals(ctx context.Context, companyID string) ([]Goal, error)
	FindGoalsByEmployee(ctx context.Context, companyID, employeeID string) ([]Goal, error)
	FindGoalByID(ctx context.Context, companyID, id string) (*Goal, error)
	FindGoalForUpdate(ctx context.Context, companyID, id string) (*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, companyID, id string) error

	CreateKeyResult(ctx context.Context, kr *KeyResult) error
	FindKeyResults(ctx context.Context, goalID string) ([]KeyResult, error)
	FindKeyResultByID(ctx context.Context, goalID, id string) (*KeyResult, error)
	UpdateKeyResult(ctx context.Context, kr *KeyResult) error
	DeleteKeyResult(ctx context.Context, goalID, id string) error

	CreateProgressUpdate(ctx context.Context, u *GoalProgressUpdate) error
	FindProgressUpdates(ctx context.Context, companyID, goalID string) ([]GoalProgressUpdate, error)
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

func (r *repository) CreateGoal(ctx context.Context, g *Goal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindGoals(ctx context.Context, companyID string) ([]Goal, error) {
	var goals []Goal
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("KeyResults").
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func (r *repository) FindGoalsByEmployee(ctx context.Context, companyID, employeeID string) ([]Goal, error) {
	var goals []Goal
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("KeyResults").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func (r *repository) FindGoalByID(ctx context.Context, companyID, id string) (*Goal, error) {
	var g Goal
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("KeyResults").
		First(&g, "id = ?", id).Error
	return &g, err
}

// FindGoalForUpdate locks the goal row so concurrent recomputes and
// progress updates serialize.
func (r *repository) FindGoalForUpdate(ctx context.Context, companyID, id string) (*Goal, error) {
	var g Goal
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Preload("KeyResults").
		First(&g, "id = ?", id).Error
	return &g, err
}

func (r *repository) UpdateGoal(ctx context.Context, g *Goal) error {
	return r.db.WithContext(ctx).Omit("KeyResults").Save(g).Error
}

func (r *repository) DeleteGoal(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Goal{}, "id = ?", id).Error
}

func (r *repository) CreateKeyResult(ctx context.Context, kr *KeyResult) error {
	return r.db.WithContext(ctx).Create(kr).Error
}

func (r *repository) FindKeyResults(ctx context.Context, goalID string) ([]KeyResult, error) {
	var krs []KeyResult
	err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("created_at ASC").
		Find(&krs).Error
	return krs, err
}

func (r *repository) FindKeyResultByID(ctx context.Context, goalID, id string) (*KeyResult, error) {
	var kr KeyResult
	err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		First(&kr, "id = ?", id).Error
	return &kr, err
}

func (r *repository) UpdateKeyResult(ctx context.Context, kr *KeyResult) error {
	return r.db.WithContext(ctx).Save(kr).Error
}

func (r *repository) DeleteKeyResult(ctx context.Context, goalID, id string) error {
	return r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Delete(&KeyResult{}, "id = ?", id).Error
}

func (r *repository) CreateProgressUpdate(ctx context.Context, u *GoalProgressUpdate) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindProgressUpdates(ctx context.Context, companyID, goalID string) ([]GoalProgressUpdate, error) {
	var rows []GoalProgressUpdate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("goal_id = ?", goalID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
