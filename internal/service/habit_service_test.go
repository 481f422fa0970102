package service

import (
	"testing"

	"focusflow/backend/internal/model"
)

func logsFor(dates ...string) []model.HabitLog {
	logs := make([]model.HabitLog, 0, len(dates))
	for _, date := range dates {
		logs = append(logs, model.HabitLog{Date: date})
	}
	return logs
}

func TestStreak(t *testing.T) {
	today := "2026-08-31"

	cases := []struct {
		name string
		logs []model.HabitLog
		want int
	}{
		{"no logs", nil, 0},
		{"today only", logsFor("2026-08-31"), 1},
		{"three consecutive ending today", logsFor("2026-08-31", "2026-08-30", "2026-08-29"), 3},
		{"streak alive via yesterday", logsFor("2026-08-30", "2026-08-29"), 2},
		{"gap breaks the count", logsFor("2026-08-31", "2026-08-29"), 1},
		{"stale streak", logsFor("2026-08-20", "2026-08-19"), 0},
	}

	for _, tc := range cases {
		if got := streak(tc.logs, today); got != tc.want {
			t.Errorf("%s: streak = %d, want %d", tc.name, got, tc.want)
		}
	}
}
