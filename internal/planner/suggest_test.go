package planner

import (
	"math/rand"
	"testing"
)

func TestSuggestionPoolsMembership(t *testing.T) {
	random := rand.New(rand.NewSource(7)).Float64

	pools := []struct {
		name string
		fn   func(EnergyLevel, RandomSource) string
		pool map[EnergyLevel][]string
	}{
		{"break", BreakSuggestion, breakPools},
		{"sensory", SensoryBoost, sensoryPools},
		{"motivation", MotivationalMessage, motivationPools},
		{"encouragement", Encouragement, encouragementPools},
	}

	for _, p := range pools {
		for _, energy := range allEnergies {
			for i := 0; i < 50; i++ {
				got := p.fn(energy, random)
				if got == "" {
					t.Fatalf("%s/%s: empty suggestion", p.name, energy)
				}
				if !containsString(p.pool[energy], got) {
					t.Fatalf("%s/%s: %q not in pool", p.name, energy, got)
				}
			}
		}
	}
}

func TestSuggestionPoolSizes(t *testing.T) {
	for _, energy := range allEnergies {
		for name, pool := range map[string][]string{
			"break":         breakPools[energy],
			"sensory":       sensoryPools[energy],
			"motivation":    motivationPools[energy],
			"encouragement": encouragementPools[energy],
		} {
			if len(pool) < 4 || len(pool) > 5 {
				t.Errorf("%s/%s: pool has %d entries, want 4-5", name, energy, len(pool))
			}
		}
	}
}

func TestPickCoversWholePool(t *testing.T) {
	pool := breakPools[EnergyBalanced]
	seen := map[string]bool{}
	random := rand.New(rand.NewSource(42)).Float64
	for i := 0; i < 200; i++ {
		seen[pick(pool, random)] = true
	}
	if len(seen) != len(pool) {
		t.Fatalf("200 draws hit %d of %d pool entries", len(seen), len(pool))
	}
}

func TestIndexNeverOutOfRange(t *testing.T) {
	// A source that returns values at the top of [0,1) must not index past
	// the end of the pool.
	if got := index(4, fixedRandom(0.999999999)); got != 3 {
		t.Fatalf("near-one draw indexed %d", got)
	}
	if got := index(4, fixedRandom(0)); got != 0 {
		t.Fatalf("zero draw indexed %d", got)
	}
}

func TestSuggestedActivitiesVaryByArea(t *testing.T) {
	for _, area := range []FocusArea{AreaCreative, AreaAnalytical, AreaAdmin, AreaAny} {
		titles := suggestedActivities(area, fixedRandom(0))
		if len(titles) == 0 {
			t.Fatalf("%s: no suggested activities", area)
		}
		for _, title := range titles {
			if !containsString(suggestedActivityPools[area], title) {
				t.Fatalf("%s: %q not in area pool", area, title)
			}
		}
	}
}

func containsString(pool []string, s string) bool {
	for _, entry := range pool {
		if entry == s {
			return true
		}
	}
	return false
}
