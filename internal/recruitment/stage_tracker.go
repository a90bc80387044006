package recruitment

const (
	StageApplied            = "applied"
	StageScreening          = "screening"
	StagePhoneInterview     = "phone_interview"
	StageTechnicalInterview = "technical_interview"
	StageOnsiteInterview    = "onsite_interview"
	StageFinalInterview     = "final_interview"
	StageBackgroundCheck    = "background_check"
	StageOfferPending       = "offer_pending"
	StageOfferSent          = "offer_sent"
	StageHired              = "hired"
	StageRejected           = "rejected"
	StageWithdrawn          = "withdrawn"
)

// pipelineOrder fixes the forward direction of the hiring pipeline. The
// terminal side-stages rejected and withdrawn sit outside the ordering.
var pipelineOrder = map[string]int{
	StageApplied:            0,
	StageScreening:          1,
	StagePhoneInterview:     2,
	StageTechnicalInterview: 3,
	StageOnsiteInterview:    4,
	StageFinalInterview:     5,
	StageBackgroundCheck:    6,
	StageOfferPending:       7,
	StageOfferSent:          8,
	StageHired:              9,
}

func IsValidStage(stage string) bool {
	if stage == StageRejected || stage == StageWithdrawn {
		return true
	}
	_, ok := pipelineOrder[stage]
	return ok
}

func IsTerminalStage(stage string) bool {
	return stage == StageHired || stage == StageRejected || stage == StageWithdrawn
}

// CanTransition decides whether an application may move from one stage to
// another. Forward moves may skip stages, a single-step backward move is
// allowed to correct mistakes, and rejected/withdrawn are reachable from
// any non-terminal stage. Terminal stages never move again.
func CanTransition(from, to string) bool {
	if !IsValidStage(from) || !IsValidStage(to) || from == to {
		return false
	}
	if IsTerminalStage(from) {
		return false
	}
	if to == StageRejected || to == StageWithdrawn {
		return true
	}

	fromIdx := pipelineOrder[from]
	toIdx := pipelineOrder[to]
	if toIdx > fromIdx {
		return true
	}
	return fromIdx-toIdx == 1
}
