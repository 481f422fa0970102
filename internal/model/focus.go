package model

import "time"

const (
	SessionStatusStarted   = "started"
	SessionStatusCompleted = "completed"
	SessionStatusAbandoned = "abandoned"
)

// FocusSession is the metadata the app persists about one focus session.
// The generated plan itself is ephemeral and never stored; only the shape
// of the session (energy, minutes, task count) and the later reflection are.
type FocusSession struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	EnergyLevel    string    `json:"energyLevel"`
	FocusMinutes   int       `json:"focusMinutes"`
	BreakMinutes   int       `json:"breakMinutes"`
	TaskCount      int       `json:"taskCount"`
	Status         string    `json:"status"`
	Feeling        string    `json:"feeling,omitempty"`
	ReflectionNote string    `json:"reflectionNote,omitempty"`
	StartedAt      time.Time `json:"startedAt"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
