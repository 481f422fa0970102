package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "focusflow/backend/internal/errors"
	"focusflow/backend/internal/model"
	"focusflow/backend/internal/repository"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

type TaskInput struct {
	Title       string
	Description string
	Priority    string
	Status      string
}

func (s *TaskService) Create(ctx context.Context, userID string, input TaskInput) (*model.Task, *apperrors.APIError) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.BadRequest("invalid_title", "title is required")
	}
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.IsValidPriority(priority) {
		return nil, apperrors.BadRequest("invalid_priority", "priority must be one of low, medium, high")
	}

	now := time.Now().UTC()
	task := model.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Status:      model.TaskStatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, apperrors.Internal("failed to create task")
	}
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, userID, id string) (*model.Task, *apperrors.APIError) {
	task, err := s.repo.GetByID(ctx, userID, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("task_not_found", "task not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get task")
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, userID, status string) ([]model.Task, *apperrors.APIError) {
	if status != "" && !model.IsValidTaskStatus(status) {
		return nil, apperrors.BadRequest("invalid_status", "status must be one of todo, done")
	}
	tasks, err := s.repo.List(ctx, userID, status)
	if err != nil {
		return nil, apperrors.Internal("failed to list tasks")
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id string, input TaskInput) (*model.Task, *apperrors.APIError) {
	task, apiErr := s.Get(ctx, userID, id)
	if apiErr != nil {
		return nil, apiErr
	}

	if input.Title != "" {
		task.Title = strings.TrimSpace(input.Title)
	}
	if input.Description != "" {
		task.Description = strings.TrimSpace(input.Description)
	}
	if input.Priority != "" {
		if !model.IsValidPriority(input.Priority) {
			return nil, apperrors.BadRequest("invalid_priority", "priority must be one of low, medium, high")
		}
		task.Priority = input.Priority
	}
	if input.Status != "" {
		if !model.IsValidTaskStatus(input.Status) {
			return nil, apperrors.BadRequest("invalid_status", "status must be one of todo, done")
		}
		task.Status = input.Status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperrors.NotFound("task_not_found", "task not found")
		}
		return nil, apperrors.Internal("failed to update task")
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) *apperrors.APIError {
	err := s.repo.Delete(ctx, userID, id)
	if err == repository.ErrNotFound {
		return apperrors.NotFound("task_not_found", "task not found")
	}
	if err != nil {
		return apperrors.Internal("failed to delete task")
	}
	return nil
}

// Incomplete returns the user's todo tasks in insertion order, the feed the
// focus planner draws candidates from.
func (s *TaskService) Incomplete(ctx context.Context, userID string) ([]model.Task, *apperrors.APIError) {
	return s.List(ctx, userID, model.TaskStatusTodo)
}
