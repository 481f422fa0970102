package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "focusflow/backend/internal/errors"
	"focusflow/backend/internal/model"
	"focusflow/backend/internal/planner"
	"focusflow/backend/internal/repository"
)

// FocusService turns a user's check-in into a session plan and records
// session metadata. Plans themselves are never persisted; only the session
// shape and the post-session reflection are.
type FocusService struct {
	taskRepo    *repository.TaskRepository
	sessionRepo *repository.SessionRepository
	random      planner.RandomSource
}

func NewFocusService(
	taskRepo *repository.TaskRepository,
	sessionRepo *repository.SessionRepository,
	random planner.RandomSource,
) *FocusService {
	return &FocusService{
		taskRepo:    taskRepo,
		sessionRepo: sessionRepo,
		random:      random,
	}
}

type PlanRequest struct {
	EnergyLevel   string
	TimeAvailable int
	FocusArea     string
	TaskIDs       []string
	Query         string
}

// GeneratePlan builds a plan from either explicit inputs or a free-text
// query. With TaskIDs the caller has picked the tasks; otherwise the user's
// incomplete tasks feed priority selection.
func (s *FocusService) GeneratePlan(ctx context.Context, userID string, req PlanRequest) (*planner.Plan, *apperrors.APIError) {
	input := planner.Input{
		Energy: planner.EnergyLevel(req.EnergyLevel),
		Time:   req.TimeAvailable,
		Area:   planner.FocusArea(req.FocusArea),
	}

	if strings.TrimSpace(req.Query) != "" {
		input.Energy, input.Time, input.Area = planner.ParseQuery(req.Query)
	} else {
		if input.Area == "" {
			input.Area = planner.AreaAny
		}
	}

	incomplete, err := s.taskRepo.List(ctx, userID, model.TaskStatusTodo)
	if err != nil {
		return nil, apperrors.Internal("failed to load tasks")
	}

	if len(req.TaskIDs) > 0 {
		selected, apiErr := pickByID(incomplete, req.TaskIDs)
		if apiErr != nil {
			return nil, apiErr
		}
		input.Candidates = selected
		input.Preselected = true
	} else {
		input.Candidates = toCandidates(incomplete)
	}

	plan, planErr := planner.Generate(input, s.random)
	if planErr != nil {
		return nil, apperrors.BadRequest("invalid_plan_input", planErr.Error())
	}
	return plan, nil
}

type StartSessionInput struct {
	EnergyLevel  string
	FocusMinutes int
	BreakMinutes int
	TaskCount    int
}

func (s *FocusService) StartSession(ctx context.Context, userID string, input StartSessionInput) (*model.FocusSession, *apperrors.APIError) {
	if !planner.ValidEnergy(planner.EnergyLevel(input.EnergyLevel)) {
		return nil, apperrors.BadRequest("invalid_energy", "energyLevel must be one of sluggish, wired, energized, anxious, balanced")
	}
	if input.FocusMinutes <= 0 || input.BreakMinutes < 0 {
		return nil, apperrors.BadRequest("invalid_minutes", "focusMinutes must be positive and breakMinutes non-negative")
	}
	if input.TaskCount < 0 || input.TaskCount > 3 {
		return nil, apperrors.BadRequest("invalid_task_count", "taskCount must be between 0 and 3")
	}

	now := time.Now().UTC()
	session := model.FocusSession{
		ID:           uuid.NewString(),
		UserID:       userID,
		EnergyLevel:  input.EnergyLevel,
		FocusMinutes: input.FocusMinutes,
		BreakMinutes: input.BreakMinutes,
		TaskCount:    input.TaskCount,
		Status:       model.SessionStatusStarted,
		StartedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.sessionRepo.Insert(ctx, &session); err != nil {
		return nil, apperrors.Internal("failed to record session")
	}
	return &session, nil
}

type ReflectionInput struct {
	Completed bool
	Feeling   string
	Note      string
}

func (s *FocusService) AddReflection(ctx context.Context, userID, sessionID string, input ReflectionInput) (*model.FocusSession, *apperrors.APIError) {
	session, err := s.sessionRepo.GetByID(ctx, userID, sessionID)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("session_not_found", "focus session not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get session")
	}

	if input.Completed {
		session.Status = model.SessionStatusCompleted
	} else {
		session.Status = model.SessionStatusAbandoned
	}
	session.Feeling = strings.TrimSpace(input.Feeling)
	session.ReflectionNote = strings.TrimSpace(input.Note)
	session.UpdatedAt = time.Now().UTC()

	if updateErr := s.sessionRepo.Update(ctx, session); updateErr != nil {
		return nil, apperrors.Internal("failed to update session")
	}
	return session, nil
}

func (s *FocusService) History(ctx context.Context, userID string, limit int) ([]model.FocusSession, *apperrors.APIError) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sessions, err := s.sessionRepo.List(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.Internal("failed to get history")
	}
	return sessions, nil
}

func toCandidates(tasks []model.Task) []planner.CandidateTask {
	candidates := make([]planner.CandidateTask, 0, len(tasks))
	for _, task := range tasks {
		candidates = append(candidates, planner.CandidateTask{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Priority:    task.Priority,
		})
	}
	return candidates
}

// pickByID resolves caller-selected task ids against the incomplete list,
// preserving the caller's order and capping at three.
func pickByID(tasks []model.Task, ids []string) ([]planner.CandidateTask, *apperrors.APIError) {
	byID := make(map[string]model.Task, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}

	selected := make([]planner.CandidateTask, 0, len(ids))
	for _, id := range ids {
		task, ok := byID[id]
		if !ok {
			return nil, apperrors.BadRequest("unknown_task", "taskIds must reference your incomplete tasks")
		}
		selected = append(selected, planner.CandidateTask{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Priority:    task.Priority,
		})
		if len(selected) == 3 {
			break
		}
	}
	return selected, nil
}
