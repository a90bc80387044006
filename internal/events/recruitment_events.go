package events

import "time"

const (
	ApplicationStageChangedTopic = "hcm.recruitment.application.stage.v1"
	OfferDecidedTopic            = "hcm.recruitment.offer.decided.v1"
)

type ApplicationStageChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	CompanyID     string    `json:"company_id"`
	FromStage     string    `json:"from_stage"`
	ToStage       string    `json:"to_stage"`
	ChangedBy     string    `json:"changed_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type OfferDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	OfferID    string    `json:"offer_id"`
	CompanyID  string    `json:"company_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
