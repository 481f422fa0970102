package planner

const maxPlanTasks = 3

// SelectTasks picks which candidates go into the plan when the user has not
// chosen tasks themselves. Candidates are bucketed by priority with their
// relative order preserved, then an energy-dependent preference decides
// which buckets feed the result and how many tasks it holds: low energy
// gets a couple of easy wins, restless or anxious states get medium-weight
// work, and full energy gets up to three high-priority tasks.
func SelectTasks(candidates []CandidateTask, energy EnergyLevel) []CandidateTask {
	var high, medium, low []CandidateTask
	for _, task := range candidates {
		switch task.Priority {
		case "high":
			high = append(high, task)
		case "medium":
			medium = append(medium, task)
		default:
			low = append(low, task)
		}
	}

	var preferred []CandidateTask
	var limit int
	switch energy {
	case EnergySluggish:
		preferred = append(append(preferred, low...), medium...)
		limit = 2
	case EnergyWired, EnergyAnxious:
		preferred = append(append(preferred, medium...), low...)
		limit = 2
	default:
		preferred = append(append(preferred, high...), medium...)
		limit = maxPlanTasks
	}

	if len(preferred) > limit {
		preferred = preferred[:limit]
	}

	if len(preferred) == 0 && len(candidates) > 0 {
		fallback := 2
		if len(candidates) < fallback {
			fallback = len(candidates)
		}
		preferred = append(preferred, candidates[:fallback]...)
	}

	return preferred
}

// AllocateDurations spreads focusTime across the selected tasks. Every task
// gets an equal integer share and the last task absorbs the rounding
// remainder, so the durations always sum to focusTime exactly.
func AllocateDurations(selected []CandidateTask, focusTime int, energy EnergyLevel, random RandomSource) []FocusTask {
	if len(selected) == 0 {
		return []FocusTask{}
	}

	count := len(selected)
	base := focusTime / count

	tasks := make([]FocusTask, 0, count)
	for i, candidate := range selected {
		duration := base
		if i == count-1 {
			duration = focusTime - base*(count-1)
		}
		tasks = append(tasks, FocusTask{
			SourceTaskID:    candidate.ID,
			Title:           candidate.Title,
			DurationMinutes: duration,
			Encouragement:   Encouragement(energy, random),
		})
	}
	return tasks
}
