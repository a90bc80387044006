package leave

type CreatePolicyRequest struct {
	Name                   string  `json:"name" binding:"required,min=2,max=100"`
	MinimumNoticeHours     int     `json:"minimum_notice_hours" binding:"min=0"`
	RequiresApproval       *bool   `json:"requires_approval"`
	AllowNegativeBalance   bool    `json:"allow_negative_balance"`
	DefaultEntitlementDays float64 `json:"default_entitlement_days" binding:"min=0"`
	MaxCarryoverDays       float64 `json:"max_carryover_days" binding:"min=0"`
}

type UpdatePolicyRequest struct {
	Name                   string  `json:"name" binding:"required,min=2,max=100"`
	MinimumNoticeHours     int     `json:"minimum_notice_hours" binding:"min=0"`
	RequiresApproval       *bool   `json:"requires_approval"`
	AllowNegativeBalance   bool    `json:"allow_negative_balance"`
	DefaultEntitlementDays float64 `json:"default_entitlement_days" binding:"min=0"`
	MaxCarryoverDays       float64 `json:"max_carryover_days" binding:"min=0"`
}

type PolicyResponse struct {
	ID                     string  `json:"id"`
	CompanyID              string  `json:"company_id"`
	Name                   string  `json:"name"`
	MinimumNoticeHours     int     `json:"minimum_notice_hours"`
	RequiresApproval       bool    `json:"requires_approval"`
	AllowNegativeBalance   bool    `json:"allow_negative_balance"`
	DefaultEntitlementDays float64 `json:"default_entitlement_days"`
	MaxCarryoverDays       float64 `json:"max_carryover_days"`
}

type SubmitLeaveRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required,uuid"`
	PolicyID     string `json:"policy_id" binding:"required,uuid"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	StartHalfDay bool   `json:"start_half_day"`
	EndHalfDay   bool   `json:"end_half_day"`
	Reason       string `json:"reason"`
}

type ActionLeaveRequest struct {
	Action   string `json:"action" binding:"required,oneof=approve reject"`
	Comments string `json:"comments"`
}

type LeaveRequestResponse struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"company_id"`
	EmployeeID       string  `json:"employee_id"`
	PolicyID         string  `json:"policy_id"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	StartHalfDay     bool    `json:"start_half_day"`
	EndHalfDay       bool    `json:"end_half_day"`
	DaysRequested    float64 `json:"days_requested"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	CurrentLevel     int     `json:"current_level"`
	CreatedBy        string  `json:"created_by"`
	DecidedBy        *string `json:"decided_by,omitempty"`
	DecidedAt        *string `json:"decided_at,omitempty"`
	DecisionComments *string `json:"decision_comments,omitempty"`
}

type BalanceResponse struct {
	EmployeeID  string  `json:"employee_id"`
	PolicyID    string  `json:"policy_id"`
	Year        int     `json:"year"`
	Entitlement float64 `json:"entitlement"`
	Accrued     float64 `json:"accrued"`
	Used        float64 `json:"used"`
	Pending     float64 `json:"pending"`
	Carryover   float64 `json:"carryover"`
	Available   float64 `json:"available"`
}
