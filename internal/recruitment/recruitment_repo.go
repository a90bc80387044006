package recruitment

import (
	"context"
	"database/sql"

	"odyssey-hcm/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=recruitment_repo.go -destination=mock/recruitment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateRequisition(ctx context.Context, r *JobRequisition) error
	FindRequisitions(ctx context.Context, companyID string) ([]JobRequisition, error)
	FindRequisitionByID(ctx context.Context, companyID, id string) (*JobRequisition, error)
	UpdateRequisition(ctx context.Context, r *JobRequisition) error

	CreateOffer(ctx context.Context, o *Offer) error
	FindOffers(ctx context.Context, companyID string) ([]Offer, error)
	FindOfferByID(ctx context.Context, companyID, id string) (*Offer, error)
	UpdateOffer(ctx context.Context, o *Offer) error

	CreateApplication(ctx context.Context, a *Application) error
	FindApplications(ctx context.Context, companyID string) ([]Application, error)
	FindApplicationByID(ctx context.Context, companyID, id string) (*Application, error)
	FindApplicationForUpdate(ctx context.Context, companyID, id string) (*Application, error)
	FindApplicationByCandidate(ctx context.Context, companyID, requisitionID, candidateEmail string) (*Application, error)
	UpdateApplication(ctx context.Context, a *Application) error

	CreateStageHistory(ctx context.Context, h *ApplicationStageHistory) error
	FindStageHistory(ctx context.Context, companyID, applicationID string) ([]ApplicationStageHistory, error)
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

func (r *repository) CreateRequisition(ctx context.Context, req *JobRequisition) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindRequisitions(ctx context.Context, companyID string) ([]JobRequisition, error) {
	var reqs []JobRequisition
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindRequisitionByID(ctx context.Context, companyID, id string) (*JobRequisition, error) {
	var req JobRequisition
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) UpdateRequisition(ctx context.Context, req *JobRequisition) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) CreateOffer(ctx context.Context, o *Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindOffers(ctx context.Context, companyID string) ([]Offer, error) {
	var offers []Offer
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&offers).Error
	return offers, err
}

func (r *repository) FindOfferByID(ctx context.Context, companyID, id string) (*Offer, error) {
	var o Offer
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repository) UpdateOffer(ctx context.Context, o *Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) CreateApplication(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindApplications(ctx context.Context, companyID string) ([]Application, error) {
	var apps []Application
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) FindApplicationByID(ctx context.Context, companyID, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

// FindApplicationForUpdate locks the row so concurrent stage moves against
// the same application serialize.
func (r *repository) FindApplicationForUpdate(ctx context.Context, companyID, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindApplicationByCandidate(ctx context.Context, companyID, requisitionID, candidateEmail string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("requisition_id = ?", requisitionID).
		Where("LOWER(candidate_email) = LOWER(?)", candidateEmail).
		First(&a).Error
	return &a, err
}

func (r *repository) UpdateApplication(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) CreateStageHistory(ctx context.Context, h *ApplicationStageHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindStageHistory(ctx context.Context, companyID, applicationID string) ([]ApplicationStageHistory, error) {
	var rows []ApplicationStageHistory
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
