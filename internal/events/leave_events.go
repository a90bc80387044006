package events

import "time"

const LeaveRequestDecidedTopic = "hcm.leave.request.decided.v1"

// LeaveRequestDecidedEvent is queued through the outbox whenever a leave
// request reaches a terminal decision. Downstream consumers (notification
// service, calendar sync) live outside this repo.
type LeaveRequestDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	CompanyID      string    `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	Status         string    `json:"status"`
	DaysRequested  float64   `json:"days_requested"`
	DecidedBy      string    `json:"decided_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
