package workflow

import (
	"context"
	"database/sql"
	"errors"
	"time"

	workflowerrors "odyssey-hcm/internal/workflow/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Subject is the capability a domain object exposes to the engine: its
// identity plus the two terminal side effects. Requisitions, offers and
// leave requests all plug in here so the step-advance state machine exists
// exactly once.
type Subject interface {
	SubjectKind() string
	SubjectRef() uuid.UUID
	OnApproved(ctx context.Context, tx *sql.Tx) error
	OnRejected(ctx context.Context, tx *sql.Tx) error
}

type Approver struct {
	ID       uuid.UUID
	Required bool
}

type Options struct {
	RejectionTerminates bool
}

func DefaultOptions() Options {
	return Options{RejectionTerminates: true}
}

// Engine runs inside the calling service's transaction: step update,
// workflow completion and the subject's terminal effect land atomically or
// not at all.
//
//go:generate mockgen -source=workflow_service.go -destination=mock/workflow_service_mock.go -package=mock
type Engine interface {
	Create(ctx context.Context, tx *sql.Tx, companyID string, subject Subject, approvers []Approver, opts Options) (WorkflowResponse, error)
	Act(ctx context.Context, tx *sql.Tx, companyID string, subject Subject, actorID string, decision Decision, comments string) (WorkflowResponse, error)
	Cancel(ctx context.Context, tx *sql.Tx, companyID string, subject Subject) error
	GetBySubject(ctx context.Context, companyID, subjectType, subjectID string) (WorkflowResponse, error)
}

type engine struct {
	repo   Repository
	logger *zap.Logger
}

func NewEngine(repo Repository, logger ...*zap.Logger) Engine {
	l := zap.L().Named("workflow.engine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.engine")
	}
	return &engine{repo: repo, logger: l}
}

func (e *engine) Create(
	ctx context.Context,
	tx *sql.Tx,
	companyID string,
	subject Subject,
	approvers []Approver,
	opts Options,
) (WorkflowResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return WorkflowResponse{}, workflowerrors.ErrInvalidCompanyID
	}
	if len(approvers) == 0 {
		return WorkflowResponse{}, workflowerrors.ErrNoApprovers
	}
	for _, a := range approvers {
		if a.ID == uuid.Nil {
			return WorkflowResponse{}, workflowerrors.ErrInvalidApproverID
		}
	}

	qtx := e.repo.WithTx(tx)

	_, err = qtx.FindActiveBySubject(ctx, companyID, subject.SubjectKind(), subject.SubjectRef().String())
	if err == nil {
		return WorkflowResponse{}, workflowerrors.ErrWorkflowAlreadyActive
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		e.logger.Error("create workflow existing lookup failed", zap.Error(err))
		return WorkflowResponse{}, err
	}

	wf := &ApprovalWorkflow{
		ID:                  uuid.New(),
		CompanyID:           companyUUID,
		SubjectType:         subject.SubjectKind(),
		SubjectID:           subject.SubjectRef(),
		Status:              StatusActive,
		RejectionTerminates: opts.RejectionTerminates,
		Steps:               make([]ApprovalStep, len(approvers)),
	}
	for i, a := range approvers {
		wf.Steps[i] = ApprovalStep{
			ID:         uuid.New(),
			WorkflowID: wf.ID,
			Level:      i + 1,
			ApproverID: a.ID,
			Status:     StepPending,
			Required:   a.Required,
		}
	}

	if err := qtx.Create(ctx, wf); err != nil {
		e.logger.Error("create workflow persist failed",
			zap.String("subject_type", subject.SubjectKind()),
			zap.String("subject_id", subject.SubjectRef().String()),
			zap.Error(err),
		)
		return WorkflowResponse{}, err
	}

	e.logger.Info("workflow created",
		zap.String("workflow_id", wf.ID.String()),
		zap.String("subject_type", wf.SubjectType),
		zap.String("subject_id", wf.SubjectID.String()),
		zap.Int("levels", len(wf.Steps)),
	)

	return mapToResponse(*wf), nil
}

func (e *engine) Act(
	ctx context.Context,
	tx *sql.Tx,
	companyID string,
	subject Subject,
	actorID string,
	decision Decision,
	comments string,
) (WorkflowResponse, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return WorkflowResponse{}, workflowerrors.ErrInvalidDecision
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return WorkflowResponse{}, workflowerrors.ErrNotCurrentApprover
	}

	qtx := e.repo.WithTx(tx)

	wf, err := qtx.FindActiveBySubject(ctx, companyID, subject.SubjectKind(), subject.SubjectRef().String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkflowResponse{}, workflowerrors.ErrWorkflowNotFound
		}
		e.logger.Error("act workflow lookup failed", zap.Error(err))
		return WorkflowResponse{}, err
	}

	step := wf.currentPendingStep()
	if step == nil {
		return WorkflowResponse{}, workflowerrors.ErrWorkflowNotActive
	}
	if step.ApproverID != actorUUID {
		e.logger.Warn("act workflow actor not current approver",
			zap.String("workflow_id", wf.ID.String()),
			zap.Int("current_level", step.Level),
			zap.String("actor_id", actorID),
		)
		return WorkflowResponse{}, workflowerrors.ErrNotCurrentApprover
	}

	now := time.Now().UTC()
	step.ActionAt = &now
	if comments != "" {
		step.Comments = &comments
	}

	switch decision {
	case DecisionApprove:
		step.Status = StepApproved
	case DecisionReject:
		step.Status = StepRejected
	}

	if err := qtx.UpdateStep(ctx, step); err != nil {
		e.logger.Error("act workflow step persist failed",
			zap.String("workflow_id", wf.ID.String()),
			zap.Int("level", step.Level),
			zap.Error(err),
		)
		return WorkflowResponse{}, err
	}

	switch {
	case decision == DecisionApprove && !wf.hasPendingRequiredStep():
		// Last required level approved: the chain is done.
		wf.Status = StatusCompleted
		if err := qtx.UpdateStatus(ctx, wf.ID.String(), StatusCompleted); err != nil {
			return WorkflowResponse{}, err
		}
		if err := subject.OnApproved(ctx, tx); err != nil {
			return WorkflowResponse{}, err
		}

	case decision == DecisionReject && wf.RejectionTerminates && step.Required:
		wf.Status = StatusCancelled
		if err := qtx.UpdateStatus(ctx, wf.ID.String(), StatusCancelled); err != nil {
			return WorkflowResponse{}, err
		}
		if err := subject.OnRejected(ctx, tx); err != nil {
			return WorkflowResponse{}, err
		}

	case decision == DecisionReject && !wf.hasPendingStep():
		// A non-terminating rejection lets the chain continue past the
		// step, but once nothing is pending the workflow still has to
		// settle: the required approvals it collected decide which way.
		if wf.hasApprovedRequiredStep() {
			wf.Status = StatusCompleted
			if err := qtx.UpdateStatus(ctx, wf.ID.String(), StatusCompleted); err != nil {
				return WorkflowResponse{}, err
			}
			if err := subject.OnApproved(ctx, tx); err != nil {
				return WorkflowResponse{}, err
			}
		} else {
			wf.Status = StatusCancelled
			if err := qtx.UpdateStatus(ctx, wf.ID.String(), StatusCancelled); err != nil {
				return WorkflowResponse{}, err
			}
			if err := subject.OnRejected(ctx, tx); err != nil {
				return WorkflowResponse{}, err
			}
		}
	}

	e.logger.Info("workflow action recorded",
		zap.String("workflow_id", wf.ID.String()),
		zap.Int("level", step.Level),
		zap.String("decision", string(decision)),
		zap.String("workflow_status", wf.Status),
	)

	return mapToResponse(*wf), nil
}

func (e *engine) Cancel(ctx context.Context, tx *sql.Tx, companyID string, subject Subject) error {
	qtx := e.repo.WithTx(tx)

	wf, err := qtx.FindActiveBySubject(ctx, companyID, subject.SubjectKind(), subject.SubjectRef().String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := qtx.UpdateStatus(ctx, wf.ID.String(), StatusCancelled); err != nil {
		return err
	}

	e.logger.Info("workflow cancelled",
		zap.String("workflow_id", wf.ID.String()),
		zap.String("subject_type", wf.SubjectType),
	)
	return nil
}

func (e *engine) GetBySubject(ctx context.Context, companyID, subjectType, subjectID string) (WorkflowResponse, error) {
	wf, err := e.repo.FindBySubject(ctx, companyID, subjectType, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkflowResponse{}, workflowerrors.ErrWorkflowNotFound
		}
		return WorkflowResponse{}, err
	}
	return mapToResponse(*wf), nil
}
