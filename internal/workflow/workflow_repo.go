package workflow

import (
	"context"
	"database/sql"

	"odyssey-hcm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=workflow_repo.go -destination=mock/workflow_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, wf *ApprovalWorkflow) error
	FindByID(ctx context.Context, companyID, id string) (*ApprovalWorkflow, error)
	FindActiveBySubject(ctx context.Context, companyID, subjectType, subjectID string) (*ApprovalWorkflow, error)
	FindBySubject(ctx context.Context, companyID, subjectType, subjectID string) (*ApprovalWorkflow, error)
	UpdateStep(ctx context.Context, step *ApprovalStep) error
	UpdateStatus(ctx context.Context, id string, status string) error
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

func (r *repository) Create(ctx context.Context, wf *ApprovalWorkflow) error {
	return r.db.WithContext(ctx).Create(wf).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*ApprovalWorkflow, error) {
	var wf ApprovalWorkflow
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		First(&wf, "id = ?", id).Error
	return &wf, err
}

func (r *repository) FindActiveBySubject(ctx context.Context, companyID, subjectType, subjectID string) (*ApprovalWorkflow, error) {
	var wf ApprovalWorkflow
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("subject_type = ?", subjectType).
		Where("subject_id = ?", subjectID).
		Where("status = ?", StatusActive).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		First(&wf).Error
	return &wf, err
}

func (r *repository) FindBySubject(ctx context.Context, companyID, subjectType, subjectID string) (*ApprovalWorkflow, error) {
	var wf ApprovalWorkflow
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("subject_type = ?", subjectType).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		First(&wf).Error
	return &wf, err
}

func (r *repository) UpdateStep(ctx context.Context, step *ApprovalStep) error {
	return r.db.WithContext(ctx).Save(step).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&ApprovalWorkflow{}).
		Where("id = ?", id).
		Update("status", status).Error
}
