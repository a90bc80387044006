package performance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	performanceerrors "odyssey-hcm/internal/performance/errors"
	"odyssey-hcm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=performance_service.go -destination=mock/performance_service_mock.go -package=mock
type Service interface {
	CreateGoal(ctx context.Context, companyID, actorID string, req CreateGoalRequest) (*GoalResponse, error)
	GetGoals(ctx context.Context, companyID, employeeID string) ([]GoalResponse, error)
	GetGoal(ctx context.Context, companyID, id string) (*GoalResponse, error)
	UpdateGoal(ctx context.Context, companyID, actorID, id string, req UpdateGoalRequest) (*GoalResponse, error)
	DeleteGoal(ctx context.Context, companyID, actorID, id string) error

	AddKeyResult(ctx context.Context, companyID, actorID, goalID string, req CreateKeyResultRequest) (*GoalResponse, error)
	UpdateKeyResult(ctx context.Context, companyID, actorID, goalID, id string, req UpdateKeyResultRequest) (*GoalResponse, error)
	DeleteKeyResult(ctx context.Context, companyID, actorID, goalID, id string) (*GoalResponse, error)

	UpdateProgress(ctx context.Context, companyID, actorID, goalID string, req UpdateProgressRequest) (*GoalResponse, error)
	GetProgressHistory(ctx context.Context, companyID, goalID string) ([]ProgressUpdateResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateGoal(ctx context.Context, companyID, actorID string, req CreateGoalRequest) (*GoalResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, performanceerrors.ErrInvalidActorID
	}
	eid, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, performanceerrors.ErrInvalidEmployeeID
	}

	goal := &Goal{
		ID:          uuid.New(),
		CompanyID:   cid,
		EmployeeID:  eid,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      GoalStatusDraft,
		Priority:    PriorityMedium,
	}
	if req.Priority != "" {
		goal.Priority = req.Priority
	}
	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, performanceerrors.ErrInvalidDateFormat
		}
		goal.DueDate = &due
	}

	if req.ParentGoalID != nil {
		pid, err := uuid.Parse(*req.ParentGoalID)
		if err != nil {
			return nil, performanceerrors.ErrInvalidGoalID
		}
		if err := s.checkParentLink(ctx, companyID, goal.ID, pid); err != nil {
			return nil, err
		}
		goal.ParentGoalID = &pid
	}

	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		s.logger.Error("create goal failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("goal created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("goal_id", goal.ID.String()),
		zap.String("employee_id", eid.String()))

	resp := mapGoalToResponse(goal)
	return &resp, nil
}

func (s *service) GetGoals(ctx context.Context, companyID, employeeID string) ([]GoalResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}

	var (
		goals []Goal
		err   error
	)
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, performanceerrors.ErrInvalidEmployeeID
		}
		goals, err = s.repo.FindGoalsByEmployee(ctx, companyID, employeeID)
	} else {
		goals, err = s.repo.FindGoals(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		resp = append(resp, mapGoalToResponse(&goals[i]))
	}
	return resp, nil
}

func (s *service) GetGoal(ctx context.Context, companyID, id string) (*GoalResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, performanceerrors.ErrInvalidGoalID
	}

	goal, err := s.repo.FindGoalByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrGoalNotFound
		}
		return nil, err
	}

	resp := mapGoalToResponse(goal)
	return &resp, nil
}

func (s *service) UpdateGoal(ctx context.Context, companyID, actorID, id string, req UpdateGoalRequest) (*GoalResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, performanceerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, performanceerrors.ErrInvalidGoalID
	}

	goal, err := s.repo.FindGoalByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrGoalNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}
	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, performanceerrors.ErrInvalidDateFormat
		}
		goal.DueDate = &due
	}
	if req.ParentGoalID != nil {
		pid, err := uuid.Parse(*req.ParentGoalID)
		if err != nil {
			return nil, performanceerrors.ErrInvalidGoalID
		}
		if err := s.checkParentLink(ctx, companyID, goal.ID, pid); err != nil {
			return nil, err
		}
		goal.ParentGoalID = &pid
	}

	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	resp := mapGoalToResponse(goal)
	return &resp, nil
}

func (s *service) DeleteGoal(ctx context.Context, companyID, actorID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return performanceerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return performanceerrors.ErrInvalidGoalID
	}

	if _, err := s.repo.FindGoalByID(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return performanceerrors.ErrGoalNotFound
		}
		return err
	}

	return s.repo.DeleteGoal(ctx, companyID, id)
}

func (s *service) AddKeyResult(ctx context.Context, companyID, actorID, goalID string, req CreateKeyResultRequest) (*GoalResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, performanceerrors.ErrInvalidActorID
	}
	weight := req.Weight
	if weight == 0 {
		weight = 1
	}
	if weight < 0 {
		return nil, performanceerrors.ErrInvalidWeight
	}

	return s.mutateKeyResults(ctx, companyID, goalID, func(qtx Repository, goal *Goal) error {
		kr := &KeyResult{
			ID:          uuid.New(),
			GoalID:      goal.ID,
			Title:       req.Title,
			TargetValue: req.TargetValue,
			Binary:      req.Binary,
			Weight:      weight,
		}
		if err := qtx.CreateKeyResult(ctx, kr); err != nil {
			return err
		}
		goal.KeyResults = append(goal.KeyResults, *kr)
		return nil
	})
}

func (s *service) UpdateKeyResult(ctx context.Context, companyID, actorID, goalID, id string, req UpdateKeyResultRequest) (*GoalResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, performanceerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, performanceerrors.ErrInvalidGoalID
	}
	if req.Weight != nil && *req.Weight <= 0 {
		return nil, performanceerrors.ErrInvalidWeight
	}

	return s.mutateKeyResults(ctx, companyID, goalID, func(qtx Repository, goal *Goal) error {
		idx := -1
		for i := range goal.KeyResults {
			if goal.KeyResults[i].ID.String() == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return performanceerrors.ErrKeyResultNotFound
		}

		kr := &goal.KeyResults[idx]
		if req.Title != nil {
			kr.Title = *req.Title
		}
		if req.TargetValue != nil {
			kr.TargetValue = *req.TargetValue
		}
		if req.CurrentValue != nil {
			kr.CurrentValue = *req.CurrentValue
		}
		if req.Binary != nil {
			kr.Binary = *req.Binary
		}
		if req.Weight != nil {
			kr.Weight = *req.Weight
		}
		return qtx.UpdateKeyResult(ctx, kr)
	})
}

func (s *service) DeleteKeyResult(ctx context.Context, companyID, actorID, goalID, id string) (*GoalResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, performanceerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, performanceerrors.ErrInvalidGoalID
	}

	return s.mutateKeyResults(ctx, companyID, goalID, func(qtx Repository, goal *Goal) error {
		idx := -1
		for i := range goal.KeyResults {
			if goal.KeyResults[i].ID.String() == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return performanceerrors.ErrKeyResultNotFound
		}
		if err := qtx.DeleteKeyResult(ctx, goalID, id); err != nil {
			return err
		}
		goal.KeyResults = append(goal.KeyResults[:idx], goal.KeyResults[idx+1:]...)
		return nil
	})
}

// mutateKeyResults runs a key result mutation and the progress recompute
// it forces inside one transaction, against a locked goal row.
func (s *service) mutateKeyResults(ctx context.Context, companyID, goalID string, mutate func(qtx Repository, goal *Goal) error) (*GoalResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(goalID); err != nil {
		return nil, performanceerrors.ErrInvalidGoalID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	goal, err := qtx.FindGoalForUpdate(ctx, companyID, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrGoalNotFound
		}
		return nil, err
	}

	if err := mutate(qtx, goal); err != nil {
		return nil, err
	}

	goal.ProgressPercent = AggregateProgress(goal.ProgressPercent, goal.KeyResults)
	if err := qtx.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Debug("goal progress recomputed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("goal_id", goal.ID.String()),
		zap.Int("progress_percent", goal.ProgressPercent))

	resp := mapGoalToResponse(goal)
	return &resp, nil
}

func (s *service) UpdateProgress(ctx context.Context, companyID, actorID, goalID string, req UpdateProgressRequest) (*GoalResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, performanceerrors.ErrInvalidActorID
	}
	gid, err := uuid.Parse(goalID)
	if err != nil {
		return nil, performanceerrors.ErrInvalidGoalID
	}
	if *req.NewProgress < 0 || *req.NewProgress > 100 {
		return nil, performanceerrors.ErrInvalidProgress
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	goal, err := qtx.FindGoalForUpdate(ctx, companyID, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrGoalNotFound
		}
		return nil, err
	}

	// The caller states what they last saw; a mismatch means a racing
	// update won and theirs would silently overwrite it.
	if goal.ProgressPercent != *req.PreviousProgress {
		return nil, performanceerrors.ErrStaleProgress.WithDetails(map[string]int{
			"current_progress": goal.ProgressPercent,
			"stated_progress":  *req.PreviousProgress,
		})
	}

	previous := goal.ProgressPercent
	goal.ProgressPercent = *req.NewProgress
	if err := qtx.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	audit := &GoalProgressUpdate{
		ID:               uuid.New(),
		CompanyID:        cid,
		GoalID:           gid,
		PreviousProgress: previous,
		NewProgress:      *req.NewProgress,
		UpdatedBy:        actorUUID,
		Notes:            req.UpdateNotes,
	}
	if err := qtx.CreateProgressUpdate(ctx, audit); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("goal progress updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("goal_id", goalID),
		zap.Int("previous_progress", previous),
		zap.Int("new_progress", *req.NewProgress))

	resp := mapGoalToResponse(goal)
	return &resp, nil
}

func (s *service) GetProgressHistory(ctx context.Context, companyID, goalID string) ([]ProgressUpdateResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(goalID); err != nil {
		return nil, performanceerrors.ErrInvalidGoalID
	}

	if _, err := s.repo.FindGoalByID(ctx, companyID, goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrGoalNotFound
		}
		return nil, err
	}

	rows, err := s.repo.FindProgressUpdates(ctx, companyID, goalID)
	if err != nil {
		return nil, err
	}

	resp := make([]ProgressUpdateResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, mapProgressUpdateToResponse(&rows[i]))
	}
	return resp, nil
}

// checkParentLink walks the proposed parent chain and refuses links that
// point back at the goal itself.
func (s *service) checkParentLink(ctx context.Context, companyID string, goalID, parentID uuid.UUID) error {
	if parentID == goalID {
		return performanceerrors.ErrSelfParent
	}

	seen := map[uuid.UUID]bool{goalID: true}
	current := parentID
	for {
		if seen[current] {
			return performanceerrors.ErrParentCycle
		}
		seen[current] = true

		parent, err := s.repo.FindGoalByID(ctx, companyID, current.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return performanceerrors.ErrGoalNotFound
			}
			return err
		}
		if parent.ParentGoalID == nil {
			return nil
		}
		current = *parent.ParentGoalID
	}
}

func mapGoalToResponse(g *Goal) GoalResponse {
	krs := make([]KeyResultResponse, 0, len(g.KeyResults))
	for i := range g.KeyResults {
		krs = append(krs, mapKeyResultToResponse(&g.KeyResults[i]))
	}
	return GoalResponse{
		ID:              g.ID,
		EmployeeID:      g.EmployeeID,
		Title:           g.Title,
		Description:     g.Description,
		Category:        g.Category,
		Status:          g.Status,
		Priority:        g.Priority,
		ProgressPercent: g.ProgressPercent,
		ParentGoalID:    g.ParentGoalID,
		DueDate:         g.DueDate,
		KeyResults:      krs,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func mapKeyResultToResponse(kr *KeyResult) KeyResultResponse {
	return KeyResultResponse{
		ID:           kr.ID,
		GoalID:       kr.GoalID,
		Title:        kr.Title,
		TargetValue:  kr.TargetValue,
		CurrentValue: kr.CurrentValue,
		Binary:       kr.Binary,
		Weight:       kr.Weight,
		CreatedAt:    kr.CreatedAt,
		UpdatedAt:    kr.UpdatedAt,
	}
}

func mapProgressUpdateToResponse(u *GoalProgressUpdate) ProgressUpdateResponse {
	return ProgressUpdateResponse{
		ID:               u.ID,
		GoalID:           u.GoalID,
		PreviousProgress: u.PreviousProgress,
		NewProgress:      u.NewProgress,
		UpdatedBy:        u.UpdatedBy,
		Notes:            u.Notes,
		CreatedAt:        u.CreatedAt,
	}
}
