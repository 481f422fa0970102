package repository

import (
	"context"
	"database/sql"
	"fmt"

	"focusflow/backend/internal/model"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Insert(ctx context.Context, session *model.FocusSession) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO focus_sessions (
			id, user_id, energy_level, focus_minutes, break_minutes, task_count,
			status, feeling, reflection_note, started_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.UserID,
		session.EnergyLevel,
		session.FocusMinutes,
		session.BreakMinutes,
		session.TaskCount,
		session.Status,
		session.Feeling,
		session.ReflectionNote,
		formatTime(session.StartedAt),
		formatTime(session.CreatedAt),
		formatTime(session.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, userID, id string) (*model.FocusSession, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, energy_level, focus_minutes, break_minutes, task_count,
		        status, feeling, reflection_note, started_at, created_at, updated_at
		 FROM focus_sessions
		 WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	return scanSession(row)
}

func (r *SessionRepository) Update(ctx context.Context, session *model.FocusSession) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE focus_sessions
		 SET status = ?, feeling = ?, reflection_note = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		session.Status,
		session.Feeling,
		session.ReflectionNote,
		formatTime(session.UpdatedAt),
		session.ID,
		session.UserID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return requireRow(result)
}

func (r *SessionRepository) List(ctx context.Context, userID string, limit int) ([]model.FocusSession, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, energy_level, focus_minutes, break_minutes, task_count,
		        status, feeling, reflection_note, started_at, created_at, updated_at
		 FROM focus_sessions
		 WHERE user_id = ?
		 ORDER BY started_at DESC
		 LIMIT ?`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]model.FocusSession, 0, limit)
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(s scanner) (*model.FocusSession, error) {
	var session model.FocusSession
	var startedAt, createdAt, updatedAt string
	err := s.Scan(
		&session.ID,
		&session.UserID,
		&session.EnergyLevel,
		&session.FocusMinutes,
		&session.BreakMinutes,
		&session.TaskCount,
		&session.Status,
		&session.Feeling,
		&session.ReflectionNote,
		&startedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	parsedStartedAt, err := parseTime(startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse session started_at: %w", err)
	}
	session.StartedAt = parsedStartedAt

	parsedCreatedAt, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse session created_at: %w", err)
	}
	session.CreatedAt = parsedCreatedAt

	parsedUpdatedAt, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse session updated_at: %w", err)
	}
	session.UpdatedAt = parsedUpdatedAt

	return &session, nil
}
