package workflow

import "time"

type StepResponse struct {
	ID         string  `json:"id"`
	Level      int     `json:"level"`
	ApproverID string  `json:"approver_id"`
	Status     string  `json:"status"`
	Required   bool    `json:"required"`
	Comments   *string `json:"comments,omitempty"`
	ActionAt   *string `json:"action_at,omitempty"`
}

type WorkflowResponse struct {
	ID           string         `json:"id"`
	SubjectType  string         `json:"subject_type"`
	SubjectID    string         `json:"subject_id"`
	Status       string         `json:"status"`
	CurrentLevel int            `json:"current_level"`
	Steps        []StepResponse `json:"steps"`
}

func mapToResponse(wf ApprovalWorkflow) WorkflowResponse {
	resp := WorkflowResponse{
		ID:           wf.ID.String(),
		SubjectType:  wf.SubjectType,
		SubjectID:    wf.SubjectID.String(),
		Status:       wf.Status,
		CurrentLevel: wf.CurrentLevel(),
		Steps:        make([]StepResponse, len(wf.Steps)),
	}
	for i, s := range wf.Steps {
		step := StepResponse{
			ID:         s.ID.String(),
			Level:      s.Level,
			ApproverID: s.ApproverID.String(),
			Status:     s.Status,
			Required:   s.Required,
			Comments:   s.Comments,
		}
		if s.ActionAt != nil {
			v := s.ActionAt.Format(time.RFC3339)
			step.ActionAt = &v
		}
		resp.Steps[i] = step
	}
	return resp
}
