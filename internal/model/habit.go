package model

import "time"

type Habit struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Cue       string    `json:"cue,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HabitLog records one completion of a habit on a calendar day.
// Date is a YYYY-MM-DD string; at most one log exists per habit per day.
type HabitLog struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
