package workflow

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubjectRequisition  = "requisition"
	SubjectOffer        = "offer"
	SubjectLeaveRequest = "leave_request"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	StepPending  = "pending"
	StepApproved = "approved"
	StepRejected = "rejected"
)

type ApprovalWorkflow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_workflows_company_subject"`
	SubjectType string    `gorm:"type:varchar(30);not null;index:idx_workflows_company_subject"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index:idx_workflows_company_subject"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`

	// When true (the default), a rejection of a required step terminates
	// the whole chain. Opting out keeps the legacy requisition behavior
	// where a rejection only settles that one level.
	RejectionTerminates bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Steps []ApprovalStep `gorm:"foreignKey:WorkflowID;references:ID"`
}

func (ApprovalWorkflow) TableName() string {
	return "approval_workflows"
}

type ApprovalStep struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkflowID uuid.UUID `gorm:"type:uuid;not null;index"`
	Level      int       `gorm:"not null"`
	ApproverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Required   bool      `gorm:"not null;default:true"`
	Comments   *string   `gorm:"type:text"`
	ActionAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ApprovalStep) TableName() string {
	return "approval_steps"
}

// currentPendingStep returns the single lowest-level pending step, the only
// actionable one. Steps are kept sorted by level by the repository.
func (w *ApprovalWorkflow) currentPendingStep() *ApprovalStep {
	for i := range w.Steps {
		if w.Steps[i].Status == StepPending {
			return &w.Steps[i]
		}
	}
	return nil
}

// CurrentLevel reports the actionable level, or 0 when nothing is pending.
func (w *ApprovalWorkflow) CurrentLevel() int {
	if step := w.currentPendingStep(); step != nil {
		return step.Level
	}
	return 0
}

func (w *ApprovalWorkflow) hasPendingRequiredStep() bool {
	for i := range w.Steps {
		if w.Steps[i].Status == StepPending && w.Steps[i].Required {
			return true
		}
	}
	return false
}

func (w *ApprovalWorkflow) hasPendingStep() bool {
	return w.currentPendingStep() != nil
}

func (w *ApprovalWorkflow) hasApprovedRequiredStep() bool {
	for i := range w.Steps {
		if w.Steps[i].Status == StepApproved && w.Steps[i].Required {
			return true
		}
	}
	return false
}
