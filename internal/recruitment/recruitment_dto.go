package recruitment

type CreateRequisitionRequest struct {
	Title        string   `json:"title" binding:"required,min=3,max=150"`
	DepartmentID *string  `json:"department_id" binding:"omitempty,uuid"`
	PositionID   *string  `json:"position_id" binding:"omitempty,uuid"`
	Headcount    int      `json:"headcount" binding:"required,min=1"`
	ApproverIDs  []string `json:"approver_ids" binding:"required,min=1,dive,uuid"`
}

type RequisitionResponse struct {
	ID                string  `json:"id"`
	CompanyID         string  `json:"company_id"`
	RequisitionNumber string  `json:"requisition_number"`
	Title             string  `json:"title"`
	DepartmentID      *string `json:"department_id,omitempty"`
	PositionID        *string `json:"position_id,omitempty"`
	Headcount         int     `json:"headcount"`
	Status            string  `json:"status"`
	CreatedBy         string  `json:"created_by"`
}

type CreateOfferRequest struct {
	ApplicationID  string   `json:"application_id" binding:"required,uuid"`
	SalaryAmount   float64  `json:"salary_amount" binding:"required,gt=0"`
	SalaryCurrency string   `json:"salary_currency" binding:"omitempty,len=3"`
	ApproverIDs    []string `json:"approver_ids" binding:"required,min=1,dive,uuid"`
}

type OfferResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	ApplicationID  string  `json:"application_id"`
	SalaryAmount   float64 `json:"salary_amount"`
	SalaryCurrency string  `json:"salary_currency"`
	Status         string  `json:"status"`
	CreatedBy      string  `json:"created_by"`
}

type DecisionRequest struct {
	Comments string `json:"comments"`
}

type CreateApplicationRequest struct {
	RequisitionID  string `json:"requisition_id" binding:"required,uuid"`
	CandidateName  string `json:"candidate_name" binding:"required,min=2,max=150"`
	CandidateEmail string `json:"candidate_email" binding:"required,email"`
}

type ApplicationResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	RequisitionID  string `json:"requisition_id"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	CurrentStage   string `json:"current_stage"`
}

type StageTransitionRequest struct {
	Stage           string  `json:"stage" binding:"required"`
	Notes           *string `json:"notes"`
	RejectionReason *string `json:"rejection_reason"`
	Feedback        *string `json:"feedback"`
}

type BulkStageTransitionRequest struct {
	ApplicationIDs  []string `json:"application_ids" binding:"required,min=1,dive,uuid"`
	Stage           string   `json:"stage" binding:"required"`
	Notes           *string  `json:"notes"`
	RejectionReason *string  `json:"rejection_reason"`
}

type StageHistoryResponse struct {
	ID              string  `json:"id"`
	ApplicationID   string  `json:"application_id"`
	FromStage       string  `json:"from_stage"`
	ToStage         string  `json:"to_stage"`
	ChangedBy       string  `json:"changed_by"`
	Notes           *string `json:"notes,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	Feedback        *string `json:"feedback,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
