package recruitment_test

import (
	"context"
	"database/sql"
	"testing"

	"odyssey-hcm/internal/messaging/kafka"
	"odyssey-hcm/internal/recruitment"
	recruitmenterrors "odyssey-hcm/internal/recruitment/errors"
	"odyssey-hcm/internal/shared/apperror"
	countermock "odyssey-hcm/internal/shared/counter/mock"
	"odyssey-hcm/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeRecruitmentRepository struct {
	createRequisitionFn          func(ctx context.Context, r *recruitment.JobRequisition) error
	findRequisitionsFn           func(ctx context.Context, companyID string) ([]recruitment.JobRequisition, error)
	findRequisitionByIDFn        func(ctx context.Context, companyID, id string) (*recruitment.JobRequisition, error)
	updateRequisitionFn          func(ctx context.Context, r *recruitment.JobRequisition) error
	createOfferFn                func(ctx context.Context, o *recruitment.Offer) error
	findOffersFn                 func(ctx context.Context, companyID string) ([]recruitment.Offer, error)
	findOfferByIDFn              func(ctx context.Context, companyID, id string) (*recruitment.Offer, error)
	updateOfferFn                func(ctx context.Context, o *recruitment.Offer) error
	createApplicationFn          func(ctx context.Context, a *recruitment.Application) error
	findApplicationsFn           func(ctx context.Context, companyID string) ([]recruitment.Application, error)
	findApplicationByIDFn        func(ctx context.Context, companyID, id string) (*recruitment.Application, error)
	findApplicationForUpdateFn   func(ctx context.Context, companyID, id string) (*recruitment.Application, error)
	findApplicationByCandidateFn func(ctx context.Context, companyID, requisitionID, candidateEmail string) (*recruitment.Application, error)
	updateApplicationFn          func(ctx context.Context, a *recruitment.Application) error
	createStageHistoryFn         func(ctx context.Context, h *recruitment.ApplicationStageHistory) error
	findStageHistoryFn           func(ctx context.Context, companyID, applicationID string) ([]recruitment.ApplicationStageHistory, error)
}

func (f *fakeRecruitmentRepository) WithTx(tx *sql.Tx) recruitment.Repository { return f }

func (f *fakeRecruitmentRepository) CreateRequisition(ctx context.Context, r *recruitment.JobRequisition) error {
	if f.createRequisitionFn != nil {
		return f.createRequisitionFn(ctx, r)
	}
	return nil
}

func (f *fakeRecruitmentRepository) FindRequisitions(ctx context.Context, companyID string) ([]recruitment.JobRequisition, error) {
	if f.findRequisitionsFn != nil {
		return f.findRequisitionsFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeRecruitmentRepository) FindRequisitionByID(ctx context.Context, companyID, id string) (*recruitment.JobRequisition, error) {
	if f.findRequisitionByIDFn != nil {
		return f.findRequisitionByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecruitmentRepository) UpdateRequisition(ctx context.Context, r *recruitment.JobRequisition) error {
	if f.updateRequisitionFn != nil {
		return f.updateRequisitionFn(ctx, r)
	}
	return nil
}

func (f *fakeRecruitmentRepository) CreateOffer(ctx context.Context, o *recruitment.Offer) error {
	if f.createOfferFn != nil {
		return f.createOfferFn(ctx, o)
	}
	return nil
}

func (f *fakeRecruitmentRepository) FindOffers(ctx context.Context, companyID string) ([]recruitment.Offer, error) {
	if f.findOffersFn != nil {
		return f.findOffersFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeRecruitmentRepository) FindOfferByID(ctx context.Context, companyID, id string) (*recruitment.Offer, error) {
	if f.findOfferByIDFn != nil {
		return f.findOfferByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecruitmentRepository) UpdateOffer(ctx context.Context, o *recruitment.Offer) error {
	if f.updateOfferFn != nil {
		return f.updateOfferFn(ctx, o)
	}
	return nil
}

func (f *fakeRecruitmentRepository) CreateApplication(ctx context.Context, a *recruitment.Application) error {
	if f.createApplicationFn != nil {
		return f.createApplicationFn(ctx, a)
	}
	return nil
}

func (f *fakeRecruitmentRepository) FindApplications(ctx context.Context, companyID string) ([]recruitment.Application, error) {
	if f.findApplicationsFn != nil {
		return f.findApplicationsFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeRecruitmentRepository) FindApplicationByID(ctx context.Context, companyID, id string) (*recruitment.Application, error) {
	if f.findApplicationByIDFn != nil {
		return f.findApplicationByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecruitmentRepository) FindApplicationForUpdate(ctx context.Context, companyID, id string) (*recruitment.Application, error) {
	if f.findApplicationForUpdateFn != nil {
		return f.findApplicationForUpdateFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecruitmentRepository) FindApplicationByCandidate(ctx context.Context, companyID, requisitionID, candidateEmail string) (*recruitment.Application, error) {
	if f.findApplicationByCandidateFn != nil {
		return f.findApplicationByCandidateFn(ctx, companyID, requisitionID, candidateEmail)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecruitmentRepository) UpdateApplication(ctx context.Context, a *recruitment.Application) error {
	if f.updateApplicationFn != nil {
		return f.updateApplicationFn(ctx, a)
	}
	return nil
}

func (f *fakeRecruitmentRepository) CreateStageHistory(ctx context.Context, h *recruitment.ApplicationStageHistory) error {
	if f.createStageHistoryFn != nil {
		return f.createStageHistoryFn(ctx, h)
	}
	return nil
}

func (f *fakeRecruitmentRepository) FindStageHistory(ctx context.Context, companyID, applicationID string) ([]recruitment.ApplicationStageHistory, error) {
	if f.findStageHistoryFn != nil {
		return f.findStageHistoryFn(ctx, companyID, applicationID)
	}
	return nil, nil
}

type fakeWorkflowEngine struct {
	createFn func(ctx context.Context, tx *sql.Tx, companyID string, subject workflow.Subject, approvers []workflow.Approver, opts workflow.Options) (workflow.WorkflowResponse, error)
	actFn    func(ctx context.Context, tx *sql.Tx, companyID string, subject workflow.Subject, actorID string, decision workflow.Decision, comments string) (workflow.WorkflowResponse, error)
}

func (f *fakeWorkflowEngine) Create(ctx context.Context, tx *sql.Tx, companyID string, subject workflow.Subject, approvers []workflow.Approver, opts workflow.Options) (workflow.WorkflowResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, tx, companyID, subject, approvers, opts)
	}
	return workflow.WorkflowResponse{Status: workflow.StatusActive, CurrentLevel: 1}, nil
}

func (f *fakeWorkflowEngine) Act(ctx context.Context, tx *sql.Tx, companyID string, subject workflow.Subject, actorID string, decision workflow.Decision, comments string) (workflow.WorkflowResponse, error) {
	if f.actFn != nil {
		return f.actFn(ctx, tx, companyID, subject, actorID, decision, comments)
	}
	return workflow.WorkflowResponse{}, nil
}

func (f *fakeWorkflowEngine) Cancel(ctx context.Context, tx *sql.Tx, companyID string, subject workflow.Subject) error {
	return nil
}

func (f *fakeWorkflowEngine) GetBySubject(ctx context.Context, companyID, subjectType, subjectID string) (workflow.WorkflowResponse, error) {
	return workflow.WorkflowResponse{}, nil
}

type fakeOutboxRepository struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type recruitmentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service recruitment.Service
	repo    *fakeRecruitmentRepository
	counter *countermock.MockRepository
	engine  *fakeWorkflowEngine
	outbox  *fakeOutboxRepository
}

func setupRecruitmentServiceTest(t *testing.T) *recruitmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	counterRepo := countermock.NewMockRepository(ctrl)
	repo := &fakeRecruitmentRepository{}
	engine := &fakeWorkflowEngine{}
	outbox := &fakeOutboxRepository{}
	svc := recruitment.NewService(db, repo, counterRepo, engine, outbox)

	return &recruitmentServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
		engine:  engine,
		outbox:  outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestRecruitmentService_CreateRequisition(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("allocates a numbered requisition and opens approval", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.counter.EXPECT().
			GetNextValue(gomock.Any(), companyID, "job_requisition").
			Return(int64(42), nil)

		approverA := uuid.New()
		approverB := uuid.New()
		var engineApprovers []workflow.Approver
		deps.engine.createFn = func(ctx context.Context, tx *sql.Tx, cid string, subject workflow.Subject, approvers []workflow.Approver, opts workflow.Options) (workflow.WorkflowResponse, error) {
			engineApprovers = approvers
			assert.Equal(t, workflow.SubjectRequisition, subject.SubjectKind())
			assert.True(t, opts.RejectionTerminates)
			return workflow.WorkflowResponse{Status: workflow.StatusActive, CurrentLevel: 1}, nil
		}

		resp, err := deps.service.CreateRequisition(ctx, companyID, actorID, recruitment.CreateRequisitionRequest{
			Title:       "Senior Backend Engineer",
			Headcount:   2,
			ApproverIDs: []string{approverA.String(), approverB.String()},
		})

		assert.NoError(t, err)
		assert.Equal(t, "REQ-000042", resp.RequisitionNumber)
		assert.Equal(t, recruitment.RequisitionStatusPendingApproval, resp.Status)
		assert.Len(t, engineApprovers, 2)
		assert.Equal(t, approverA, engineApprovers[0].ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approver list must not be empty", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateRequisition(ctx, companyID, actorID, recruitment.CreateRequisitionRequest{
			Title:     "Data Analyst",
			Headcount: 1,
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrNoApprovers)
	})

	t.Run("unparseable department id is rejected before the transaction", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()

		badID := "not-a-uuid"
		_, err := deps.service.CreateRequisition(ctx, companyID, actorID, recruitment.CreateRequisitionRequest{
			Title:        "Data Analyst",
			Headcount:    1,
			DepartmentID: &badID,
			ApproverIDs:  []string{uuid.New().String()},
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrInvalidDepartmentID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unparseable position id is rejected before the transaction", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()

		badID := "not-a-uuid"
		_, err := deps.service.CreateRequisition(ctx, companyID, actorID, recruitment.CreateRequisitionRequest{
			Title:       "Data Analyst",
			Headcount:   1,
			PositionID:  &badID,
			ApproverIDs: []string{uuid.New().String()},
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrInvalidPositionID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestRecruitmentService_ActOnRequisition(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	approverID := uuid.New().String()

	t.Run("two level approval completes on the second approve", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)

		r := &recruitment.JobRequisition{
			ID:                uuid.New(),
			CompanyID:         uuid.MustParse(companyID),
			RequisitionNumber: "REQ-000007",
			Title:             "Platform Engineer",
			Status:            recruitment.RequisitionStatusPendingApproval,
			CreatedBy:         uuid.New(),
		}
		deps.repo.findRequisitionByIDFn = func(ctx context.Context, cid, id string) (*recruitment.JobRequisition, error) {
			return r, nil
		}

		acts := 0
		deps.engine.actFn = func(ctx context.Context, tx *sql.Tx, cid string, subject workflow.Subject, actorID string, decision workflow.Decision, comments string) (workflow.WorkflowResponse, error) {
			acts++
			if acts == 1 {
				return workflow.WorkflowResponse{Status: workflow.StatusActive, CurrentLevel: 2}, nil
			}
			if err := subject.OnApproved(ctx, tx); err != nil {
				return workflow.WorkflowResponse{}, err
			}
			return workflow.WorkflowResponse{Status: workflow.StatusCompleted}, nil
		}

		first, err := deps.service.ActOnRequisition(ctx, companyID, approverID, r.ID.String(), workflow.DecisionApprove, "")
		assert.NoError(t, err)
		assert.Equal(t, recruitment.RequisitionStatusPendingApproval, first.Status)

		second, err := deps.service.ActOnRequisition(ctx, companyID, approverID, r.ID.String(), workflow.DecisionApprove, "lgtm")
		assert.NoError(t, err)
		assert.Equal(t, recruitment.RequisitionStatusApproved, second.Status)
	})

	t.Run("rejection marks the requisition rejected", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		r := &recruitment.JobRequisition{
			ID:        uuid.New(),
			CompanyID: uuid.MustParse(companyID),
			Status:    recruitment.RequisitionStatusPendingApproval,
			CreatedBy: uuid.New(),
		}
		deps.repo.findRequisitionByIDFn = func(ctx context.Context, cid, id string) (*recruitment.JobRequisition, error) {
			return r, nil
		}
		deps.engine.actFn = func(ctx context.Context, tx *sql.Tx, cid string, subject workflow.Subject, actorID string, decision workflow.Decision, comments string) (workflow.WorkflowResponse, error) {
			if err := subject.OnRejected(ctx, tx); err != nil {
				return workflow.WorkflowResponse{}, err
			}
			return workflow.WorkflowResponse{Status: workflow.StatusCancelled}, nil
		}

		resp, err := deps.service.ActOnRequisition(ctx, companyID, approverID, r.ID.String(), workflow.DecisionReject, "headcount freeze")
		assert.NoError(t, err)
		assert.Equal(t, recruitment.RequisitionStatusRejected, resp.Status)
	})
}

func TestRecruitmentService_CreateApplication(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	approvedRequisition := func() *recruitment.JobRequisition {
		return &recruitment.JobRequisition{
			ID:        uuid.New(),
			CompanyID: uuid.MustParse(companyID),
			Status:    recruitment.RequisitionStatusApproved,
			CreatedBy: uuid.New(),
		}
	}

	t.Run("new candidate starts in applied", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		r := approvedRequisition()
		deps.repo.findRequisitionByIDFn = func(ctx context.Context, cid, id string) (*recruitment.JobRequisition, error) {
			return r, nil
		}

		resp, err := deps.service.CreateApplication(ctx, companyID, recruitment.CreateApplicationRequest{
			RequisitionID:  r.ID.String(),
			CandidateName:  "Dana Petrov",
			CandidateEmail: "dana@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, recruitment.StageApplied, resp.CurrentStage)
	})

	t.Run("duplicate candidate is a conflict", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		r := approvedRequisition()
		deps.repo.findRequisitionByIDFn = func(ctx context.Context, cid, id string) (*recruitment.JobRequisition, error) {
			return r, nil
		}
		deps.repo.findApplicationByCandidateFn = func(ctx context.Context, cid, rid, email string) (*recruitment.Application, error) {
			return &recruitment.Application{ID: uuid.New()}, nil
		}

		_, err := deps.service.CreateApplication(ctx, companyID, recruitment.CreateApplicationRequest{
			RequisitionID:  r.ID.String(),
			CandidateName:  "Dana Petrov",
			CandidateEmail: "dana@example.com",
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrDuplicateApplication)
	})

	t.Run("concurrent duplicate insert surfaces as a conflict", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		r := approvedRequisition()
		deps.repo.findRequisitionByIDFn = func(ctx context.Context, cid, id string) (*recruitment.JobRequisition, error) {
			return r, nil
		}
		// The pre-insert lookup misses the racing row; the unique index
		// catches it on insert.
		deps.repo.createApplicationFn = func(ctx context.Context, a *recruitment.Application) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_applications_candidate_posting"}
		}

		_, err := deps.service.CreateApplication(ctx, companyID, recruitment.CreateApplicationRequest{
			RequisitionID:  r.ID.String(),
			CandidateName:  "Dana Petrov",
			CandidateEmail: "dana@example.com",
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrDuplicateApplication)
	})

	t.Run("unapproved requisition cannot take applications", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		r := approvedRequisition()
		r.Status = recruitment.RequisitionStatusPendingApproval
		deps.repo.findRequisitionByIDFn = func(ctx context.Context, cid, id string) (*recruitment.JobRequisition, error) {
			return r, nil
		}

		_, err := deps.service.CreateApplication(ctx, companyID, recruitment.CreateApplicationRequest{
			RequisitionID:  r.ID.String(),
			CandidateName:  "Dana Petrov",
			CandidateEmail: "dana@example.com",
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrRequisitionNotApproved)
	})
}

func TestRecruitmentService_TransitionStage(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	application := func(stage string) *recruitment.Application {
		return &recruitment.Application{
			ID:             uuid.New(),
			CompanyID:      uuid.MustParse(companyID),
			RequisitionID:  uuid.New(),
			CandidateName:  "Dana Petrov",
			CandidateEmail: "dana@example.com",
			CurrentStage:   stage,
		}
	}

	t.Run("stage move writes one history row and one event", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		a := application(recruitment.StageScreening)
		deps.repo.findApplicationForUpdateFn = func(ctx context.Context, cid, id string) (*recruitment.Application, error) {
			return a, nil
		}

		var history []*recruitment.ApplicationStageHistory
		deps.repo.createStageHistoryFn = func(ctx context.Context, h *recruitment.ApplicationStageHistory) error {
			history = append(history, h)
			return nil
		}

		notes := "strong phone screen"
		resp, err := deps.service.TransitionStage(ctx, companyID, actorID, a.ID.String(), recruitment.StageTransitionRequest{
			Stage: recruitment.StagePhoneInterview,
			Notes: &notes,
		})

		assert.NoError(t, err)
		assert.Equal(t, recruitment.StagePhoneInterview, resp.CurrentStage)

		assert.Len(t, history, 1)
		assert.Equal(t, recruitment.StageScreening, history[0].FromStage)
		assert.Equal(t, recruitment.StagePhoneInterview, history[0].ToStage)
		assert.Equal(t, actorID, history[0].ChangedBy.String())
		assert.Equal(t, &notes, history[0].Notes)

		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, "application.stage_changed", deps.outbox.events[0].EventType)
	})

	t.Run("illegal move reports from and to", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		a := application(recruitment.StageHired)
		deps.repo.findApplicationForUpdateFn = func(ctx context.Context, cid, id string) (*recruitment.Application, error) {
			return a, nil
		}

		_, err := deps.service.TransitionStage(ctx, companyID, actorID, a.ID.String(), recruitment.StageTransitionRequest{
			Stage: recruitment.StageScreening,
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrStageNotAllowed)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		details, ok := appErr.Details.(map[string]string)
		assert.True(t, ok)
		assert.Equal(t, recruitment.StageHired, details["from"])
		assert.Equal(t, recruitment.StageScreening, details["to"])
		assert.Empty(t, deps.outbox.events)
	})

	t.Run("unknown stage is rejected before loading anything", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.TransitionStage(ctx, companyID, actorID, uuid.New().String(), recruitment.StageTransitionRequest{
			Stage: "garden_leave",
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrUnknownStage)
	})
}

func TestRecruitmentService_BulkTransitionStage(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("moves every application or none", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		ok := &recruitment.Application{
			ID:           uuid.New(),
			CompanyID:    uuid.MustParse(companyID),
			CurrentStage: recruitment.StageScreening,
		}
		terminal := &recruitment.Application{
			ID:           uuid.New(),
			CompanyID:    uuid.MustParse(companyID),
			CurrentStage: recruitment.StageHired,
		}
		apps := map[string]*recruitment.Application{
			ok.ID.String():       ok,
			terminal.ID.String(): terminal,
		}
		deps.repo.findApplicationForUpdateFn = func(ctx context.Context, cid, id string) (*recruitment.Application, error) {
			if a, found := apps[id]; found {
				return a, nil
			}
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.BulkTransitionStage(ctx, companyID, actorID, recruitment.BulkStageTransitionRequest{
			ApplicationIDs: []string{ok.ID.String(), terminal.ID.String()},
			Stage:          recruitment.StageRejected,
		})

		assert.ErrorIs(t, err, recruitmenterrors.ErrStageNotAllowed)
	})

	t.Run("rejects the whole batch with one history row each", func(t *testing.T) {
		deps := setupRecruitmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		first := &recruitment.Application{
			ID:           uuid.New(),
			CompanyID:    uuid.MustParse(companyID),
			CurrentStage: recruitment.StageScreening,
		}
		second := &recruitment.Application{
			ID:           uuid.New(),
			CompanyID:    uuid.MustParse(companyID),
			CurrentStage: recruitment.StagePhoneInterview,
		}
		apps := map[string]*recruitment.Application{
			first.ID.String():  first,
			second.ID.String(): second,
		}
		deps.repo.findApplicationForUpdateFn = func(ctx context.Context, cid, id string) (*recruitment.Application, error) {
			return apps[id], nil
		}

		var history []*recruitment.ApplicationStageHistory
		deps.repo.createStageHistoryFn = func(ctx context.Context, h *recruitment.ApplicationStageHistory) error {
			history = append(history, h)
			return nil
		}

		reason := "position filled"
		resp, err := deps.service.BulkTransitionStage(ctx, companyID, actorID, recruitment.BulkStageTransitionRequest{
			ApplicationIDs:  []string{first.ID.String(), second.ID.String()},
			Stage:           recruitment.StageRejected,
			RejectionReason: &reason,
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, recruitment.StageRejected, resp[0].CurrentStage)
		assert.Equal(t, recruitment.StageRejected, resp[1].CurrentStage)

		assert.Len(t, history, 2)
		assert.Equal(t, recruitment.StageScreening, history[0].FromStage)
		assert.Equal(t, recruitment.StagePhoneInterview, history[1].FromStage)
		assert.Equal(t, &reason, history[0].RejectionReason)
		assert.Len(t, deps.outbox.events, 2)
	})
}
