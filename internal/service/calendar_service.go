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

type CalendarService struct {
	repo *repository.EventRepository
}

func NewCalendarService(repo *repository.EventRepository) *CalendarService {
	return &CalendarService{repo: repo}
}

type EventInput struct {
	Title    string
	StartsAt time.Time
	EndsAt   time.Time
	Notes    string
}

func validateEventInput(input EventInput) *apperrors.APIError {
	if strings.TrimSpace(input.Title) == "" {
		return apperrors.BadRequest("invalid_title", "title is required")
	}
	if input.StartsAt.IsZero() || input.EndsAt.IsZero() {
		return apperrors.BadRequest("invalid_times", "startsAt and endsAt are required")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return apperrors.BadRequest("invalid_times", "endsAt must be after startsAt")
	}
	return nil
}

func (s *CalendarService) Create(ctx context.Context, userID string, input EventInput) (*model.CalendarEvent, *apperrors.APIError) {
	if apiErr := validateEventInput(input); apiErr != nil {
		return nil, apiErr
	}

	now := time.Now().UTC()
	event := model.CalendarEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     strings.TrimSpace(input.Title),
		StartsAt:  input.StartsAt.UTC(),
		EndsAt:    input.EndsAt.UTC(),
		Notes:     strings.TrimSpace(input.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return nil, apperrors.Internal("failed to create event")
	}
	return &event, nil
}

func (s *CalendarService) List(ctx context.Context, userID string, from, to time.Time) ([]model.CalendarEvent, *apperrors.APIError) {
	events, err := s.repo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, apperrors.Internal("failed to list events")
	}
	return events, nil
}

func (s *CalendarService) Update(ctx context.Context, userID, id string, input EventInput) (*model.CalendarEvent, *apperrors.APIError) {
	event, err := s.repo.GetByID(ctx, userID, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("event_not_found", "event not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get event")
	}

	if input.Title != "" {
		event.Title = strings.TrimSpace(input.Title)
	}
	if !input.StartsAt.IsZero() {
		event.StartsAt = input.StartsAt.UTC()
	}
	if !input.EndsAt.IsZero() {
		event.EndsAt = input.EndsAt.UTC()
	}
	if input.Notes != "" {
		event.Notes = strings.TrimSpace(input.Notes)
	}
	if !event.EndsAt.After(event.StartsAt) {
		return nil, apperrors.BadRequest("invalid_times", "endsAt must be after startsAt")
	}
	event.UpdatedAt = time.Now().UTC()

	if updateErr := s.repo.Update(ctx, event); updateErr != nil {
		return nil, apperrors.Internal("failed to update event")
	}
	return event, nil
}

func (s *CalendarService) Delete(ctx context.Context, userID, id string) *apperrors.APIError {
	err := s.repo.Delete(ctx, userID, id)
	if err == repository.ErrNotFound {
		return apperrors.NotFound("event_not_found", "event not found")
	}
	if err != nil {
		return apperrors.Internal("failed to delete event")
	}
	return nil
}
