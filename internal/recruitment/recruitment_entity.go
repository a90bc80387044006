package recruitment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RequisitionStatusDraft           = "draft"
	RequisitionStatusPendingApproval = "pending_approval"
	RequisitionStatusApproved        = "approved"
	RequisitionStatusRejected        = "rejected"

	OfferStatusDraft           = "draft"
	OfferStatusPendingApproval = "pending_approval"
	OfferStatusApproved        = "approved"
	OfferStatusRejected        = "rejected"
)

type JobRequisition struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	RequisitionNumber string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_job_requisitions_number"`
	Title             string     `gorm:"type:varchar(150);not null"`
	DepartmentID      *uuid.UUID `gorm:"type:uuid"`
	PositionID        *uuid.UUID `gorm:"type:uuid"`
	Headcount         int        `gorm:"not null;default:1"`
	Status            string     `gorm:"type:varchar(20);not null;default:'draft'"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (JobRequisition) TableName() string {
	return "job_requisitions"
}

type Offer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`

	SalaryAmount   float64 `gorm:"type:numeric(14,2);not null"`
	SalaryCurrency string  `gorm:"type:varchar(3);not null;default:'USD'"`
	Status         string  `gorm:"type:varchar(20);not null;default:'draft'"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Offer) TableName() string {
	return "offers"
}

// Application tracks one candidate against one posting. The unique index on
// company, posting ref and candidate email is what turns a duplicate apply
// into a conflict instead of a second row.
type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_posting"`

	RequisitionID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_posting"`
	CandidateName  string    `gorm:"type:varchar(150);not null"`
	CandidateEmail string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_applications_candidate_posting"`
	CurrentStage   string    `gorm:"type:varchar(30);not null;default:'applied'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationStageHistory rows are append-only; nothing in the codebase
// updates or deletes them.
type ApplicationStageHistory struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`

	FromStage       string    `gorm:"type:varchar(30);not null"`
	ToStage         string    `gorm:"type:varchar(30);not null"`
	ChangedBy       uuid.UUID `gorm:"type:uuid;not null"`
	Notes           *string   `gorm:"type:text"`
	RejectionReason *string   `gorm:"type:text"`
	Feedback        *string   `gorm:"type:text"`

	CreatedAt time.Time
}

func (ApplicationStageHistory) TableName() string {
	return "application_stage_histories"
}
