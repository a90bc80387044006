package recruitment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"odyssey-hcm/internal/events"
	"odyssey-hcm/internal/messaging/kafka"
	recruitmenterrors "odyssey-hcm/internal/recruitment/errors"
	"odyssey-hcm/internal/shared/contextutil"
	"odyssey-hcm/internal/shared/counter"
	"odyssey-hcm/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=recruitment_service.go -destination=mock/recruitment_service_mock.go -package=mock
type Service interface {
	CreateRequisition(ctx context.Context, companyID, actorID string, req CreateRequisitionRequest) (RequisitionResponse, error)
	GetRequisitions(ctx context.Context, companyID string) ([]RequisitionResponse, error)
	GetRequisition(ctx context.Context, companyID, id string) (RequisitionResponse, error)
	ActOnRequisition(ctx context.Context, companyID, actorID, id string, decision workflow.Decision, comments string) (RequisitionResponse, error)

	CreateOffer(ctx context.Context, companyID, actorID string, req CreateOfferRequest) (OfferResponse, error)
	GetOffers(ctx context.Context, companyID string) ([]OfferResponse, error)
	GetOffer(ctx context.Context, companyID, id string) (OfferResponse, error)
	ActOnOffer(ctx context.Context, companyID, actorID, id string, decision workflow.Decision, comments string) (OfferResponse, error)

	CreateApplication(ctx context.Context, companyID string, req CreateApplicationRequest) (ApplicationResponse, error)
	GetApplications(ctx context.Context, companyID string) ([]ApplicationResponse, error)
	GetApplication(ctx context.Context, companyID, id string) (ApplicationResponse, error)
	TransitionStage(ctx context.Context, companyID, actorID, id string, req StageTransitionRequest) (ApplicationResponse, error)
	BulkTransitionStage(ctx context.Context, companyID, actorID string, req BulkStageTransitionRequest) ([]ApplicationResponse, error)
	GetStageHistory(ctx context.Context, companyID, applicationID string) ([]StageHistoryResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	engine  workflow.Engine
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	engine workflow.Engine,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("recruitment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("recruitment.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, engine: engine, outbox: outbox, logger: l}
}

func (s *service) CreateRequisition(ctx context.Context, companyID, actorID string, req CreateRequisitionRequest) (RequisitionResponse, error) {
	s.logger.Debug("create requisition requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("title", req.Title),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RequisitionResponse{}, recruitmenterrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RequisitionResponse{}, recruitmenterrors.ErrInvalidActorID
	}
	approvers, err := parseApprovers(req.ApproverIDs)
	if err != nil {
		return RequisitionResponse{}, err
	}

	var departmentID, positionID *uuid.UUID
	if req.DepartmentID != nil {
		id, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return RequisitionResponse{}, recruitmenterrors.ErrInvalidDepartmentID
		}
		departmentID = &id
	}
	if req.PositionID != nil {
		id, err := uuid.Parse(*req.PositionID)
		if err != nil {
			return RequisitionResponse{}, recruitmenterrors.ErrInvalidPositionID
		}
		positionID = &id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create requisition begin tx failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, companyID, "job_requisition")
	if err != nil {
		s.logger.Error("create requisition number allocation failed", zap.Error(err))
		return RequisitionResponse{}, err
	}

	r := &JobRequisition{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		RequisitionNumber: fmt.Sprintf("REQ-%06d", nextVal),
		Title:             req.Title,
		Headcount:         req.Headcount,
		Status:            RequisitionStatusPendingApproval,
		CreatedBy:         actorUUID,
		DepartmentID:      departmentID,
		PositionID:        positionID,
	}

	if err := qtx.CreateRequisition(ctx, r); err != nil {
		s.logger.Error("create requisition persist failed", zap.Error(err))
		return RequisitionResponse{}, err
	}

	subject := &requisitionSubject{svc: s, req: r}
	if _, err := s.engine.Create(ctx, tx, companyID, subject, approvers, workflow.DefaultOptions()); err != nil {
		return RequisitionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create requisition commit failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	s.logger.Info("requisition created",
		zap.String("requisition_id", r.ID.String()),
		zap.String("requisition_number", r.RequisitionNumber),
		zap.String("company_id", companyID),
	)
	return mapRequisitionToResponse(*r), nil
}

func (s *service) GetRequisitions(ctx context.Context, companyID string) ([]RequisitionResponse, error) {
	reqs, err := s.repo.FindRequisitions(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]RequisitionResponse, len(reqs))
	for i, r := range reqs {
		resp[i] = mapRequisitionToResponse(r)
	}
	return resp, nil
}

func (s *service) GetRequisition(ctx context.Context, companyID, id string) (RequisitionResponse, error) {
	r, err := s.repo.FindRequisitionByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequisitionResponse{}, recruitmenterrors.ErrRequisitionNotFound
		}
		return RequisitionResponse{}, err
	}
	return mapRequisitionToResponse(*r), nil
}

func (s *service) ActOnRequisition(ctx context.Context, companyID, actorID, id string, decision workflow.Decision, comments string) (RequisitionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("requisition action begin tx failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindRequisitionByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequisitionResponse{}, recruitmenterrors.ErrRequisitionNotFound
		}
		return RequisitionResponse{}, err
	}

	subject := &requisitionSubject{svc: s, req: r}
	if _, err := s.engine.Act(ctx, tx, companyID, subject, actorID, decision, comments); err != nil {
		return RequisitionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("requisition action commit failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	s.logger.Info("requisition action applied",
		zap.String("requisition_id", id),
		zap.String("decision", string(decision)),
		zap.String("status", r.Status),
	)
	return mapRequisitionToResponse(*r), nil
}

func (s *service) CreateOffer(ctx context.Context, companyID, actorID string, req CreateOfferRequest) (OfferResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return OfferResponse{}, recruitmenterrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return OfferResponse{}, recruitmenterrors.ErrInvalidActorID
	}
	approvers, err := parseApprovers(req.ApproverIDs)
	if err != nil {
		return OfferResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create offer begin tx failed", zap.Error(err))
		return OfferResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	app, err := qtx.FindApplicationByID(ctx, companyID, req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OfferResponse{}, recruitmenterrors.ErrApplicationNotFound
		}
		return OfferResponse{}, err
	}

	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}
	o := &Offer{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		ApplicationID:  app.ID,
		SalaryAmount:   req.SalaryAmount,
		SalaryCurrency: currency,
		Status:         OfferStatusPendingApproval,
		CreatedBy:      actorUUID,
	}
	if err := qtx.CreateOffer(ctx, o); err != nil {
		s.logger.Error("create offer persist failed", zap.Error(err))
		return OfferResponse{}, err
	}

	subject := &offerSubject{svc: s, offer: o}
	if _, err := s.engine.Create(ctx, tx, companyID, subject, approvers, workflow.DefaultOptions()); err != nil {
		return OfferResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create offer commit failed", zap.Error(err))
		return OfferResponse{}, err
	}
	s.logger.Info("offer created",
		zap.String("offer_id", o.ID.String()),
		zap.String("application_id", app.ID.String()),
	)
	return mapOfferToResponse(*o), nil
}

func (s *service) GetOffers(ctx context.Context, companyID string) ([]OfferResponse, error) {
	offers, err := s.repo.FindOffers(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]OfferResponse, len(offers))
	for i, o := range offers {
		resp[i] = mapOfferToResponse(o)
	}
	return resp, nil
}

func (s *service) GetOffer(ctx context.Context, companyID, id string) (OfferResponse, error) {
	o, err := s.repo.FindOfferByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OfferResponse{}, recruitmenterrors.ErrOfferNotFound
		}
		return OfferResponse{}, err
	}
	return mapOfferToResponse(*o), nil
}

func (s *service) ActOnOffer(ctx context.Context, companyID, actorID, id string, decision workflow.Decision, comments string) (OfferResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("offer action begin tx failed", zap.Error(err))
		return OfferResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.FindOfferByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OfferResponse{}, recruitmenterrors.ErrOfferNotFound
		}
		return OfferResponse{}, err
	}

	subject := &offerSubject{svc: s, offer: o}
	if _, err := s.engine.Act(ctx, tx, companyID, subject, actorID, decision, comments); err != nil {
		return OfferResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("offer action commit failed", zap.Error(err))
		return OfferResponse{}, err
	}
	return mapOfferToResponse(*o), nil
}

func (s *service) CreateApplication(ctx context.Context, companyID string, req CreateApplicationRequest) (ApplicationResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ApplicationResponse{}, recruitmenterrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create application begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	requisition, err := qtx.FindRequisitionByID(ctx, companyID, req.RequisitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, recruitmenterrors.ErrRequisitionNotFound
		}
		return ApplicationResponse{}, err
	}
	if requisition.Status != RequisitionStatusApproved {
		return ApplicationResponse{}, recruitmenterrors.ErrRequisitionNotApproved
	}

	if _, err := qtx.FindApplicationByCandidate(ctx, companyID, req.RequisitionID, req.CandidateEmail); err == nil {
		s.logger.Warn("duplicate application refused",
			zap.String("requisition_id", req.RequisitionID),
			zap.String("candidate_email", req.CandidateEmail),
		)
		return ApplicationResponse{}, recruitmenterrors.ErrDuplicateApplication
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ApplicationResponse{}, err
	}

	a := &Application{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		RequisitionID:  requisition.ID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CurrentStage:   StageApplied,
	}
	if err := qtx.CreateApplication(ctx, a); err != nil {
		mapped := mapApplicationPersistError(err)
		if errors.Is(mapped, recruitmenterrors.ErrDuplicateApplication) {
			s.logger.Warn("duplicate application refused on insert",
				zap.String("requisition_id", req.RequisitionID),
				zap.String("candidate_email", req.CandidateEmail),
			)
		} else {
			s.logger.Error("create application persist failed", zap.Error(err))
		}
		return ApplicationResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create application commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	s.logger.Info("application created",
		zap.String("application_id", a.ID.String()),
		zap.String("requisition_id", requisition.ID.String()),
	)
	return mapApplicationToResponse(*a), nil
}

func (s *service) GetApplications(ctx context.Context, companyID string) ([]ApplicationResponse, error) {
	apps, err := s.repo.FindApplications(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		resp[i] = mapApplicationToResponse(a)
	}
	return resp, nil
}

func (s *service) GetApplication(ctx context.Context, companyID, id string) (ApplicationResponse, error) {
	a, err := s.repo.FindApplicationByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, recruitmenterrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}
	return mapApplicationToResponse(*a), nil
}

func (s *service) TransitionStage(ctx context.Context, companyID, actorID, id string, req StageTransitionRequest) (ApplicationResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ApplicationResponse{}, recruitmenterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("stage transition begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := s.moveStage(ctx, tx, qtx, companyID, actorUUID, id, req.Stage, req.Notes, req.RejectionReason, req.Feedback)
	if err != nil {
		return ApplicationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("stage transition commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	s.logger.Info("application stage changed",
		zap.String("application_id", id),
		zap.String("to_stage", req.Stage),
	)
	return mapApplicationToResponse(*a), nil
}

func (s *service) BulkTransitionStage(ctx context.Context, companyID, actorID string, req BulkStageTransitionRequest) ([]ApplicationResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, recruitmenterrors.ErrInvalidActorID
	}
	if len(req.ApplicationIDs) == 0 {
		return nil, recruitmenterrors.ErrEmptyBulkTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bulk stage transition begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// One bad application fails the whole batch; partial bulk moves would
	// leave the pipeline in a state nobody asked for.
	resp := make([]ApplicationResponse, 0, len(req.ApplicationIDs))
	for _, appID := range req.ApplicationIDs {
		a, err := s.moveStage(ctx, tx, qtx, companyID, actorUUID, appID, req.Stage, req.Notes, req.RejectionReason, nil)
		if err != nil {
			return nil, err
		}
		resp = append(resp, mapApplicationToResponse(*a))
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bulk stage transition commit failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("bulk stage transition applied",
		zap.Int("applications", len(resp)),
		zap.String("to_stage", req.Stage),
	)
	return resp, nil
}

func (s *service) GetStageHistory(ctx context.Context, companyID, applicationID string) ([]StageHistoryResponse, error) {
	if _, err := s.repo.FindApplicationByID(ctx, companyID, applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruitmenterrors.ErrApplicationNotFound
		}
		return nil, err
	}

	rows, err := s.repo.FindStageHistory(ctx, companyID, applicationID)
	if err != nil {
		return nil, err
	}
	resp := make([]StageHistoryResponse, len(rows))
	for i, h := range rows {
		resp[i] = mapStageHistoryToResponse(h)
	}
	return resp, nil
}

func (s *service) moveStage(
	ctx context.Context,
	tx *sql.Tx,
	qtx Repository,
	companyID string,
	actorID uuid.UUID,
	applicationID, toStage string,
	notes, rejectionReason, feedback *string,
) (*Application, error) {
	if !IsValidStage(toStage) {
		return nil, recruitmenterrors.ErrUnknownStage
	}

	a, err := qtx.FindApplicationForUpdate(ctx, companyID, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruitmenterrors.ErrApplicationNotFound
		}
		return nil, err
	}

	fromStage := a.CurrentStage
	if !CanTransition(fromStage, toStage) {
		s.logger.Warn("stage transition refused",
			zap.String("application_id", applicationID),
			zap.String("from_stage", fromStage),
			zap.String("to_stage", toStage),
		)
		return nil, recruitmenterrors.ErrStageNotAllowed.WithDetails(map[string]string{
			"from": fromStage,
			"to":   toStage,
		})
	}

	a.CurrentStage = toStage
	if err := qtx.UpdateApplication(ctx, a); err != nil {
		return nil, err
	}

	h := &ApplicationStageHistory{
		ID:              uuid.New(),
		CompanyID:       a.CompanyID,
		ApplicationID:   a.ID,
		FromStage:       fromStage,
		ToStage:         toStage,
		ChangedBy:       actorID,
		Notes:           notes,
		RejectionReason: rejectionReason,
		Feedback:        feedback,
	}
	if err := qtx.CreateStageHistory(ctx, h); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(events.ApplicationStageChangedEvent{
		EventType:     "application.stage_changed",
		RequestID:     contextutil.GetRequestID(ctx),
		ApplicationID: a.ID.String(),
		CompanyID:     a.CompanyID.String(),
		FromStage:     fromStage,
		ToStage:       toStage,
		ChangedBy:     actorID.String(),
		OccurredAt:    time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "application",
		AggregateID:   a.ID.String(),
		EventType:     "application.stage_changed",
		Topic:         events.ApplicationStageChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return nil, err
	}

	return a, nil
}

type requisitionSubject struct {
	svc *service
	req *JobRequisition
}

func (sub *requisitionSubject) SubjectKind() string {
	return workflow.SubjectRequisition
}

func (sub *requisitionSubject) SubjectRef() uuid.UUID {
	return sub.req.ID
}

func (sub *requisitionSubject) OnApproved(ctx context.Context, tx *sql.Tx) error {
	sub.req.Status = RequisitionStatusApproved
	return sub.svc.repo.WithTx(tx).UpdateRequisition(ctx, sub.req)
}

func (sub *requisitionSubject) OnRejected(ctx context.Context, tx *sql.Tx) error {
	sub.req.Status = RequisitionStatusRejected
	return sub.svc.repo.WithTx(tx).UpdateRequisition(ctx, sub.req)
}

type offerSubject struct {
	svc   *service
	offer *Offer
}

func (sub *offerSubject) SubjectKind() string {
	return workflow.SubjectOffer
}

func (sub *offerSubject) SubjectRef() uuid.UUID {
	return sub.offer.ID
}

func (sub *offerSubject) OnApproved(ctx context.Context, tx *sql.Tx) error {
	return sub.svc.finalizeOffer(ctx, tx, sub.offer, OfferStatusApproved)
}

func (sub *offerSubject) OnRejected(ctx context.Context, tx *sql.Tx) error {
	return sub.svc.finalizeOffer(ctx, tx, sub.offer, OfferStatusRejected)
}

func (s *service) finalizeOffer(ctx context.Context, tx *sql.Tx, o *Offer, status string) error {
	o.Status = status
	if err := s.repo.WithTx(tx).UpdateOffer(ctx, o); err != nil {
		return err
	}

	payload, err := json.Marshal(events.OfferDecidedEvent{
		EventType:  "offer." + status,
		RequestID:  contextutil.GetRequestID(ctx),
		OfferID:    o.ID.String(),
		CompanyID:  o.CompanyID.String(),
		Status:     status,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "offer",
		AggregateID:   o.ID.String(),
		EventType:     "offer." + status,
		Topic:         events.OfferDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseApprovers(ids []string) ([]workflow.Approver, error) {
	if len(ids) == 0 {
		return nil, recruitmenterrors.ErrNoApprovers
	}
	approvers := make([]workflow.Approver, len(ids))
	for i, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, recruitmenterrors.ErrInvalidActorID
		}
		approvers[i] = workflow.Approver{ID: id, Required: true}
	}
	return approvers, nil
}

func mapRequisitionToResponse(r JobRequisition) RequisitionResponse {
	resp := RequisitionResponse{
		ID:                r.ID.String(),
		CompanyID:         r.CompanyID.String(),
		RequisitionNumber: r.RequisitionNumber,
		Title:             r.Title,
		Headcount:         r.Headcount,
		Status:            r.Status,
		CreatedBy:         r.CreatedBy.String(),
	}
	if r.DepartmentID != nil {
		v := r.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if r.PositionID != nil {
		v := r.PositionID.String()
		resp.PositionID = &v
	}
	return resp
}

func mapOfferToResponse(o Offer) OfferResponse {
	return OfferResponse{
		ID:             o.ID.String(),
		CompanyID:      o.CompanyID.String(),
		ApplicationID:  o.ApplicationID.String(),
		SalaryAmount:   o.SalaryAmount,
		SalaryCurrency: o.SalaryCurrency,
		Status:         o.Status,
		CreatedBy:      o.CreatedBy.String(),
	}
}

func mapApplicationToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             a.ID.String(),
		CompanyID:      a.CompanyID.String(),
		RequisitionID:  a.RequisitionID.String(),
		CandidateName:  a.CandidateName,
		CandidateEmail: a.CandidateEmail,
		CurrentStage:   a.CurrentStage,
	}
}

func mapStageHistoryToResponse(h ApplicationStageHistory) StageHistoryResponse {
	return StageHistoryResponse{
		ID:              h.ID.String(),
		ApplicationID:   h.ApplicationID.String(),
		FromStage:       h.FromStage,
		ToStage:         h.ToStage,
		ChangedBy:       h.ChangedBy.String(),
		Notes:           h.Notes,
		RejectionReason: h.RejectionReason,
		Feedback:        h.Feedback,
		CreatedAt:       h.CreatedAt.Format(time.RFC3339),
	}
}
