// Package planner generates time-boxed focus session plans from a user's
// self-reported energy level, available time, and optional task selection.
// It is pure: no storage, no HTTP, no clock. The only nondeterminism is the
// suggestion-pool draw, which goes through an injectable RandomSource.
package planner

import "fmt"

type EnergyLevel string

const (
	EnergySluggish  EnergyLevel = "sluggish"
	EnergyWired     EnergyLevel = "wired"
	EnergyEnergized EnergyLevel = "energized"
	EnergyAnxious   EnergyLevel = "anxious"
	EnergyBalanced  EnergyLevel = "balanced"
)

type FocusArea string

const (
	AreaCreative   FocusArea = "creative"
	AreaAnalytical FocusArea = "analytical"
	AreaAdmin      FocusArea = "admin"
	AreaAny        FocusArea = "any"
)

// TimeOptions are the only session lengths the planner is defined for.
var TimeOptions = []int{15, 30, 45, 60}

// CandidateTask is an incomplete task supplied by the caller. The planner
// never mutates candidates and never filters them by status; the caller is
// expected to pass only incomplete tasks.
type CandidateTask struct {
	ID          string
	Title       string
	Description string
	Priority    string // low, medium, high
}

type FocusTask struct {
	SourceTaskID    string `json:"sourceTaskId,omitempty"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Encouragement   string `json:"encouragement"`
}

type Plan struct {
	Tasks               []FocusTask `json:"tasks"`
	FocusTime           int         `json:"focusTime"`
	BreakTime           int         `json:"breakTime"`
	TotalTime           int         `json:"totalTime"`
	BreakSuggestion     string      `json:"breakSuggestion"`
	SensoryBoost        string      `json:"sensoryBoost"`
	MotivationalMessage string      `json:"motivationalMessage"`
}

// RandomSource returns a value in [0, 1). Inject a fixed source in tests
// for reproducible suggestion draws.
type RandomSource func() float64

type Input struct {
	Energy     EnergyLevel
	Time       int
	Area       FocusArea
	Candidates []CandidateTask

	// Preselected marks Candidates as a caller-chosen subset that should be
	// allocated directly instead of going through priority selection.
	Preselected bool
}

type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func ValidEnergy(level EnergyLevel) bool {
	switch level {
	case EnergySluggish, EnergyWired, EnergyEnergized, EnergyAnxious, EnergyBalanced:
		return true
	}
	return false
}

func ValidArea(area FocusArea) bool {
	switch area {
	case AreaCreative, AreaAnalytical, AreaAdmin, AreaAny:
		return true
	}
	return false
}

func ValidTime(minutes int) bool {
	for _, option := range TimeOptions {
		if minutes == option {
			return true
		}
	}
	return false
}

func validateInput(in Input) error {
	if !ValidEnergy(in.Energy) {
		return &InvalidInputError{Field: "energyLevel", Reason: "must be one of sluggish, wired, energized, anxious, balanced"}
	}
	if !ValidTime(in.Time) {
		return &InvalidInputError{Field: "timeAvailable", Reason: "must be one of 15, 30, 45, 60"}
	}
	if !ValidArea(in.Area) {
		return &InvalidInputError{Field: "focusArea", Reason: "must be one of creative, analytical, admin, any"}
	}
	return nil
}

// Generate assembles a full session plan. Validation happens before any
// computation; a returned error means no partial plan was produced.
func Generate(in Input, random RandomSource) (*Plan, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	focusTime, breakTime := ComputeTimeSplit(in.Energy, in.Time)

	var tasks []FocusTask
	switch {
	case in.Preselected && len(in.Candidates) > 0:
		tasks = AllocateDurations(in.Candidates, focusTime, in.Energy, random)
	case len(in.Candidates) > 0:
		selected := SelectTasks(in.Candidates, in.Energy)
		tasks = AllocateDurations(selected, focusTime, in.Energy, random)
	default:
		tasks = placeholderTasks(in.Area, focusTime, in.Energy, random)
	}

	return &Plan{
		Tasks:               tasks,
		FocusTime:           focusTime,
		BreakTime:           breakTime,
		TotalTime:           focusTime + breakTime,
		BreakSuggestion:     BreakSuggestion(in.Energy, random),
		SensoryBoost:        SensoryBoost(in.Energy, random),
		MotivationalMessage: MotivationalMessage(in.Energy, random),
	}, nil
}

// placeholderTasks builds a self-guided plan when the user has no tasks at
// all: suggested activity titles from the focus-area pool stand in for real
// tasks, with the same duration rules.
func placeholderTasks(area FocusArea, focusTime int, energy EnergyLevel, random RandomSource) []FocusTask {
	titles := suggestedActivities(area, random)
	candidates := make([]CandidateTask, len(titles))
	for i, title := range titles {
		candidates[i] = CandidateTask{Title: title}
	}
	return AllocateDurations(candidates, focusTime, energy, random)
}
