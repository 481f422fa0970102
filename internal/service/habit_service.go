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

type HabitService struct {
	repo *repository.HabitRepository
}

func NewHabitService(repo *repository.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

type HabitInput struct {
	Name string
	Cue  string
}

type HabitView struct {
	model.Habit
	Streak      int  `json:"streak"`
	LoggedToday bool `json:"loggedToday"`
}

func (s *HabitService) Create(ctx context.Context, userID string, input HabitInput) (*model.Habit, *apperrors.APIError) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.BadRequest("invalid_name", "name is required")
	}

	now := time.Now().UTC()
	habit := model.Habit{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Cue:       strings.TrimSpace(input.Cue),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, &habit); err != nil {
		return nil, apperrors.Internal("failed to create habit")
	}
	return &habit, nil
}

func (s *HabitService) List(ctx context.Context, userID string) ([]HabitView, *apperrors.APIError) {
	habits, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list habits")
	}

	today := time.Now().UTC().Format("2006-01-02")
	views := make([]HabitView, 0, len(habits))
	for _, habit := range habits {
		logs, logErr := s.repo.ListLogs(ctx, habit.ID)
		if logErr != nil {
			return nil, apperrors.Internal("failed to list habit logs")
		}
		views = append(views, HabitView{
			Habit:       habit,
			Streak:      streak(logs, today),
			LoggedToday: len(logs) > 0 && logs[0].Date == today,
		})
	}
	return views, nil
}

func (s *HabitService) Update(ctx context.Context, userID, id string, input HabitInput) (*model.Habit, *apperrors.APIError) {
	habit, err := s.repo.GetByID(ctx, userID, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("habit_not_found", "habit not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get habit")
	}

	if input.Name != "" {
		habit.Name = strings.TrimSpace(input.Name)
	}
	if input.Cue != "" {
		habit.Cue = strings.TrimSpace(input.Cue)
	}
	habit.UpdatedAt = time.Now().UTC()

	if updateErr := s.repo.Update(ctx, habit); updateErr != nil {
		return nil, apperrors.Internal("failed to update habit")
	}
	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, userID, id string) *apperrors.APIError {
	err := s.repo.Delete(ctx, userID, id)
	if err == repository.ErrNotFound {
		return apperrors.NotFound("habit_not_found", "habit not found")
	}
	if err != nil {
		return apperrors.Internal("failed to delete habit")
	}
	return nil
}

// Log marks the habit done for today. Logging twice on the same day is a
// no-op thanks to the unique (habit_id, date) constraint.
func (s *HabitService) Log(ctx context.Context, userID, habitID string) (*model.HabitLog, *apperrors.APIError) {
	if _, err := s.repo.GetByID(ctx, userID, habitID); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperrors.NotFound("habit_not_found", "habit not found")
		}
		return nil, apperrors.Internal("failed to get habit")
	}

	now := time.Now().UTC()
	log := model.HabitLog{
		ID:        uuid.NewString(),
		HabitID:   habitID,
		Date:      now.Format("2006-01-02"),
		CreatedAt: now,
	}
	if err := s.repo.InsertLog(ctx, &log); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return &log, nil
		}
		return nil, apperrors.Internal("failed to log habit")
	}
	return &log, nil
}

func (s *HabitService) Logs(ctx context.Context, userID, habitID string) ([]model.HabitLog, *apperrors.APIError) {
	if _, err := s.repo.GetByID(ctx, userID, habitID); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperrors.NotFound("habit_not_found", "habit not found")
		}
		return nil, apperrors.Internal("failed to get habit")
	}

	logs, err := s.repo.ListLogs(ctx, habitID)
	if err != nil {
		return nil, apperrors.Internal("failed to list habit logs")
	}
	return logs, nil
}

// streak counts consecutive logged days ending today or yesterday, given
// logs ordered newest first.
func streak(logs []model.HabitLog, today string) int {
	if len(logs) == 0 {
		return 0
	}

	day, err := time.Parse("2006-01-02", today)
	if err != nil {
		return 0
	}

	expected := day
	if logs[0].Date != today {
		expected = day.AddDate(0, 0, -1)
	}

	count := 0
	for _, log := range logs {
		if log.Date != expected.Format("2006-01-02") {
			break
		}
		count++
		expected = expected.AddDate(0, 0, -1)
	}
	return count
}
