package performance

import (
	"time"

	"github.com/google/uuid"
)

type CreateGoalRequest struct {
	EmployeeID   string  `json:"employee_id" binding:"required,uuid"`
	Title        string  `json:"title" binding:"required,min=3,max=200"`
	Description  string  `json:"description" binding:"omitempty,max=2000"`
	Category     string  `json:"category" binding:"omitempty,max=50"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	ParentGoalID *string `json:"parent_goal_id" binding:"omitempty,uuid"`
	DueDate      *string `json:"due_date" binding:"omitempty"`
}

type UpdateGoalRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Category     *string `json:"category" binding:"omitempty,max=50"`
	Status       *string `json:"status" binding:"omitempty,oneof=draft active completed cancelled"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	ParentGoalID *string `json:"parent_goal_id" binding:"omitempty,uuid"`
	DueDate      *string `json:"due_date" binding:"omitempty"`
}

type CreateKeyResultRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	TargetValue float64 `json:"target_value" binding:"required,gt=0"`
	Binary      bool    `json:"binary"`
	Weight      float64 `json:"weight" binding:"omitempty,gt=0"`
}

type UpdateKeyResultRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=3,max=200"`
	TargetValue  *float64 `json:"target_value" binding:"omitempty,gt=0"`
	CurrentValue *float64 `json:"current_value" binding:"omitempty,gte=0"`
	Binary       *bool    `json:"binary"`
	Weight       *float64 `json:"weight" binding:"omitempty,gt=0"`
}

type UpdateProgressRequest struct {
	PreviousProgress *int    `json:"previous_progress" binding:"required,gte=0,lte=100"`
	NewProgress      *int    `json:"new_progress" binding:"required,gte=0,lte=100"`
	UpdateNotes      *string `json:"update_notes" binding:"omitempty,max=1000"`
}

type KeyResultResponse struct {
	ID           uuid.UUID `json:"id"`
	GoalID       uuid.UUID `json:"goal_id"`
	Title        string    `json:"title"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Binary       bool      `json:"binary"`
	Weight       float64   `json:"weight"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GoalResponse struct {
	ID              uuid.UUID           `json:"id"`
	EmployeeID      uuid.UUID           `json:"employee_id"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	Category        string              `json:"category,omitempty"`
	Status          string              `json:"status"`
	Priority        string              `json:"priority"`
	ProgressPercent int                 `json:"progress_percent"`
	ParentGoalID    *uuid.UUID          `json:"parent_goal_id,omitempty"`
	DueDate         *time.Time          `json:"due_date,omitempty"`
	KeyResults      []KeyResultResponse `json:"key_results"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type ProgressUpdateResponse struct {
	ID               uuid.UUID `json:"id"`
	GoalID           uuid.UUID `json:"goal_id"`
	PreviousProgress int       `json:"previous_progress"`
	NewProgress      int       `json:"new_progress"`
	UpdatedBy        uuid.UUID `json:"updated_by"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
