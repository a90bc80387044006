package performance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GoalStatusDraft     = "draft"
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusCancelled = "cancelled"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Goal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Title           string     `gorm:"type:varchar(200);not null"`
	Description     string     `gorm:"type:text"`
	Category        string     `gorm:"type:varchar(50)"`
	Status          string     `gorm:"type:varchar(20);not null;default:'draft'"`
	Priority        string     `gorm:"type:varchar(10);not null;default:'medium'"`
	ProgressPercent int        `gorm:"not null;default:0"`
	ParentGoalID    *uuid.UUID `gorm:"type:uuid;index"`
	DueDate         *time.Time `gorm:"type:date"`

	KeyResults []KeyResult `gorm:"foreignKey:GoalID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Goal) TableName() string {
	return "goals"
}

// KeyResult is one measurable slice of a goal. Binary key results count
// all-or-nothing; the rest score proportionally against the target.
type KeyResult struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GoalID uuid.UUID `gorm:"type:uuid;not null;index"`

	Title        string  `gorm:"type:varchar(200);not null"`
	TargetValue  float64 `gorm:"type:numeric(12,2);not null"`
	CurrentValue float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Binary       bool    `gorm:"not null;default:false"`
	Weight       float64 `gorm:"type:numeric(6,2);not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KeyResult) TableName() string {
	return "key_results"
}

// GoalProgressUpdate is the audit trail for progress moves; rows are only
// ever inserted.
type GoalProgressUpdate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;index"`

	PreviousProgress int       `gorm:"not null"`
	NewProgress      int       `gorm:"not null"`
	UpdatedBy        uuid.UUID `gorm:"type:uuid;not null"`
	Notes            *string   `gorm:"type:text"`

	CreatedAt time.Time
}

func (GoalProgressUpdate) TableName() string {
	return "goal_progress_updates"
}
