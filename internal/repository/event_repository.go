package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focusflow/backend/internal/model"
)

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.CalendarEvent) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO calendar_events (id, user_id, title, starts_at, ends_at, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.UserID,
		event.Title,
		formatTime(event.StartsAt),
		formatTime(event.EndsAt),
		event.Notes,
		formatTime(event.CreatedAt),
		formatTime(event.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, userID, id string) (*model.CalendarEvent, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, title, starts_at, ends_at, notes, created_at, updated_at
		 FROM calendar_events
		 WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	return scanEvent(row)
}

// ListRange returns events overlapping [from, to). Zero times widen the
// window on that side.
func (r *EventRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]model.CalendarEvent, error) {
	query := `SELECT id, user_id, title, starts_at, ends_at, notes, created_at, updated_at
	          FROM calendar_events
	          WHERE user_id = ?`
	args := []interface{}{userID}
	if !from.IsZero() {
		query += ` AND ends_at > ?`
		args = append(args, formatTime(from))
	}
	if !to.IsZero() {
		query += ` AND starts_at < ?`
		args = append(args, formatTime(to))
	}
	query += ` ORDER BY starts_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]model.CalendarEvent, 0)
	for rows.Next() {
		event, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *model.CalendarEvent) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE calendar_events
		 SET title = ?, starts_at = ?, ends_at = ?, notes = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		event.Title,
		formatTime(event.StartsAt),
		formatTime(event.EndsAt),
		event.Notes,
		formatTime(event.UpdatedAt),
		event.ID,
		event.UserID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return requireRow(result)
}

func (r *EventRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM calendar_events WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return requireRow(result)
}

func scanEvent(s scanner) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	var startsAt, endsAt, createdAt, updatedAt string
	err := s.Scan(
		&event.ID,
		&event.UserID,
		&event.Title,
		&startsAt,
		&endsAt,
		&event.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	for _, field := range []struct {
		raw  string
		dest *time.Time
		name string
	}{
		{startsAt, &event.StartsAt, "starts_at"},
		{endsAt, &event.EndsAt, "ends_at"},
		{createdAt, &event.CreatedAt, "created_at"},
		{updatedAt, &event.UpdatedAt, "updated_at"},
	} {
		parsed, parseErr := parseTime(field.raw)
		if parseErr != nil {
			return nil, fmt.Errorf("parse event %s: %w", field.name, parseErr)
		}
		*field.dest = parsed
	}
	return &event, nil
}
