package planner

import "testing"

func namedTask(id, priority string) CandidateTask {
	return CandidateTask{ID: id, Title: "task " + id, Priority: priority}
}

func fixedRandom(value float64) RandomSource {
	return func() float64 { return value }
}

func TestSelectTasksByEnergy(t *testing.T) {
	candidates := []CandidateTask{
		namedTask("h1", "high"),
		namedTask("l1", "low"),
		namedTask("m1", "medium"),
		namedTask("h2", "high"),
		namedTask("m2", "medium"),
		namedTask("l2", "low"),
	}

	cases := []struct {
		energy  EnergyLevel
		wantIDs []string
	}{
		{EnergySluggish, []string{"l1", "l2"}},
		{EnergyWired, []string{"m1", "m2"}},
		{EnergyAnxious, []string{"m1", "m2"}},
		{EnergyEnergized, []string{"h1", "h2", "m1"}},
		{EnergyBalanced, []string{"h1", "h2", "m1"}},
	}

	for _, tc := range cases {
		got := SelectTasks(candidates, tc.energy)
		if len(got) != len(tc.wantIDs) {
			t.Fatalf("%s: got %d tasks, want %d", tc.energy, len(got), len(tc.wantIDs))
		}
		for i, id := range tc.wantIDs {
			if got[i].ID != id {
				t.Errorf("%s: position %d got %s, want %s", tc.energy, i, got[i].ID, id)
			}
		}
	}
}

func TestSelectTasksFallback(t *testing.T) {
	// A sluggish user with only high-priority candidates still gets work:
	// up to two tasks in input order.
	candidates := []CandidateTask{
		namedTask("h1", "high"),
		namedTask("h2", "high"),
		namedTask("h3", "high"),
	}

	got := SelectTasks(candidates, EnergySluggish)
	if len(got) != 2 {
		t.Fatalf("expected fallback of 2 tasks, got %d", len(got))
	}
	if got[0].ID != "h1" || got[1].ID != "h2" {
		t.Fatalf("fallback should preserve input order, got %s, %s", got[0].ID, got[1].ID)
	}

	single := SelectTasks(candidates[:1], EnergySluggish)
	if len(single) != 1 || single[0].ID != "h1" {
		t.Fatalf("single-candidate fallback failed: %+v", single)
	}
}

func TestSelectTasksBounds(t *testing.T) {
	if got := SelectTasks(nil, EnergyBalanced); len(got) != 0 {
		t.Fatalf("expected no tasks from empty candidates, got %d", len(got))
	}

	candidates := make([]CandidateTask, 10)
	for i := range candidates {
		candidates[i] = namedTask(string(rune('a'+i)), "high")
	}
	for _, energy := range allEnergies {
		got := SelectTasks(candidates, energy)
		if len(got) > maxPlanTasks {
			t.Fatalf("%s: selected %d tasks, max is %d", energy, len(got), maxPlanTasks)
		}
		for _, task := range got {
			if !containsTask(candidates, task.ID) {
				t.Fatalf("%s: task %s not in candidate list", energy, task.ID)
			}
		}
	}
}

func containsTask(candidates []CandidateTask, id string) bool {
	for _, c := range candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}

func TestAllocateDurationsSumsExactly(t *testing.T) {
	random := fixedRandom(0)
	for count := 0; count <= 3; count++ {
		selected := make([]CandidateTask, count)
		for i := range selected {
			selected[i] = namedTask(string(rune('a'+i)), "medium")
		}
		for _, focusTime := range []int{0, 1, 2, 10, 22, 38, 51} {
			tasks := AllocateDurations(selected, focusTime, EnergyBalanced, random)
			if count == 0 {
				if len(tasks) != 0 {
					t.Fatalf("expected empty allocation for zero tasks")
				}
				continue
			}
			sum := 0
			for _, task := range tasks {
				if task.DurationMinutes < 0 {
					t.Fatalf("count=%d focus=%d: negative duration %d", count, focusTime, task.DurationMinutes)
				}
				sum += task.DurationMinutes
			}
			if sum != focusTime {
				t.Fatalf("count=%d focus=%d: durations sum to %d", count, focusTime, sum)
			}
		}
	}
}

func TestAllocateDurationsRemainderGoesLast(t *testing.T) {
	selected := []CandidateTask{
		namedTask("a", "high"),
		namedTask("b", "high"),
		namedTask("c", "high"),
	}
	tasks := AllocateDurations(selected, 38, EnergyEnergized, fixedRandom(0))
	if tasks[0].DurationMinutes != 12 || tasks[1].DurationMinutes != 12 || tasks[2].DurationMinutes != 14 {
		t.Fatalf("unexpected allocation: %d/%d/%d",
			tasks[0].DurationMinutes, tasks[1].DurationMinutes, tasks[2].DurationMinutes)
	}
	if tasks[0].SourceTaskID != "a" || tasks[2].SourceTaskID != "c" {
		t.Fatal("allocation should preserve selection order")
	}
	for _, task := range tasks {
		if task.Encouragement == "" {
			t.Fatal("every allocated task carries encouragement copy")
		}
	}
}
