package repository

import (
	"context"
	"database/sql"
	"fmt"

	"focusflow/backend/internal/model"
)

type HabitRepository struct {
	db *sql.DB
}

func NewHabitRepository(db *sql.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) Create(ctx context.Context, habit *model.Habit) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO habits (id, user_id, name, cue, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		habit.ID,
		habit.UserID,
		habit.Name,
		habit.Cue,
		formatTime(habit.CreatedAt),
		formatTime(habit.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	return nil
}

func (r *HabitRepository) GetByID(ctx context.Context, userID, id string) (*model.Habit, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, name, cue, created_at, updated_at
		 FROM habits
		 WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	return scanHabit(row)
}

func (r *HabitRepository) List(ctx context.Context, userID string) ([]model.Habit, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, name, cue, created_at, updated_at
		 FROM habits
		 WHERE user_id = ?
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	habits := make([]model.Habit, 0)
	for rows.Next() {
		habit, scanErr := scanHabit(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		habits = append(habits, *habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habits: %w", err)
	}
	return habits, nil
}

func (r *HabitRepository) Update(ctx context.Context, habit *model.Habit) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE habits
		 SET name = ?, cue = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		habit.Name,
		habit.Cue,
		formatTime(habit.UpdatedAt),
		habit.ID,
		habit.UserID,
	)
	if err != nil {
		return fmt.Errorf("update habit: %w", err)
	}
	return requireRow(result)
}

func (r *HabitRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM habits WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return requireRow(result)
}

// InsertLog records a completion for one day. The habit_logs table has a
// unique (habit_id, date) constraint; the caller treats the violation as an
// already-logged day.
func (r *HabitRepository) InsertLog(ctx context.Context, log *model.HabitLog) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO habit_logs (id, habit_id, date, created_at)
		 VALUES (?, ?, ?, ?)`,
		log.ID,
		log.HabitID,
		log.Date,
		formatTime(log.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert habit log: %w", err)
	}
	return nil
}

func (r *HabitRepository) ListLogs(ctx context.Context, habitID string) ([]model.HabitLog, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, habit_id, date, created_at
		 FROM habit_logs
		 WHERE habit_id = ?
		 ORDER BY date DESC`,
		habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("list habit logs: %w", err)
	}
	defer rows.Close()

	logs := make([]model.HabitLog, 0)
	for rows.Next() {
		var log model.HabitLog
		var createdAt string
		if err := rows.Scan(&log.ID, &log.HabitID, &log.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("scan habit log: %w", err)
		}
		parsedCreatedAt, parseErr := parseTime(createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parse habit log created_at: %w", parseErr)
		}
		log.CreatedAt = parsedCreatedAt
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habit logs: %w", err)
	}
	return logs, nil
}

func scanHabit(s scanner) (*model.Habit, error) {
	var habit model.Habit
	var createdAt string
	var updatedAt string
	err := s.Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Name,
		&habit.Cue,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan habit: %w", err)
	}

	parsedCreatedAt, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse habit created_at: %w", err)
	}
	parsedUpdatedAt, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse habit updated_at: %w", err)
	}
	habit.CreatedAt = parsedCreatedAt
	habit.UpdatedAt = parsedUpdatedAt
	return &habit, nil
}
