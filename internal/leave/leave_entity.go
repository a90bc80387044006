package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type LeavePolicy struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name                   string  `gorm:"type:varchar(100);not null"`
	MinimumNoticeHours     int     `gorm:"not null;default:0"`
	RequiresApproval       bool    `gorm:"not null;default:true"`
	AllowNegativeBalance   bool    `gorm:"not null;default:false"`
	DefaultEntitlementDays float64 `gorm:"type:numeric(5,1);not null;default:0"`
	MaxCarryoverDays       float64 `gorm:"type:numeric(5,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LeavePolicy) TableName() string {
	return "leave_policies"
}

// LeaveBalance is one employee x policy x year row. All day fields move in
// 0.5 increments. Available is persisted but always recomputed by the
// ledger; it is never user-edited.
type LeaveBalance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leave_balances_key"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leave_balances_key"`
	PolicyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leave_balances_key"`
	Year       int       `gorm:"not null;uniqueIndex:idx_leave_balances_key"`

	Entitlement float64 `gorm:"type:numeric(5,1);not null;default:0"`
	Accrued     float64 `gorm:"type:numeric(5,1);not null;default:0"`
	Used        float64 `gorm:"type:numeric(5,1);not null;default:0"`
	Pending     float64 `gorm:"type:numeric(5,1);not null;default:0"`
	Carryover   float64 `gorm:"type:numeric(5,1);not null;default:0"`
	Available   float64 `gorm:"type:numeric(5,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// computeAvailable applies the ledger invariant:
// available = entitlement + carryover - used - pending.
func (b *LeaveBalance) computeAvailable() {
	b.Available = b.Entitlement + b.Carryover - b.Used - b.Pending
}

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	PolicyID   uuid.UUID `gorm:"type:uuid;not null;index"`

	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null"`
	StartHalfDay  bool      `gorm:"not null;default:false"`
	EndHalfDay    bool      `gorm:"not null;default:false"`
	DaysRequested float64   `gorm:"type:numeric(5,1);not null"`
	Reason        string    `gorm:"type:text"`

	Status       string `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_company_status"`
	CurrentLevel int    `gorm:"not null;default:0"`

	CreatedBy        uuid.UUID  `gorm:"type:uuid;not null"`
	DecidedBy        *uuid.UUID `gorm:"type:uuid"`
	DecidedAt        *time.Time
	DecisionComments *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
