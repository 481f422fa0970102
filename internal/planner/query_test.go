package planner

import "testing"

func TestParseQueryDefaults(t *testing.T) {
	for _, text := range []string{"", "hello there", "let's go"} {
		energy, minutes, area := ParseQuery(text)
		if energy != EnergyBalanced || minutes != 30 || area != AreaAny {
			t.Fatalf("%q: got %s/%d/%s, want balanced/30/any", text, energy, minutes, area)
		}
	}
}

func TestParseQueryKeywords(t *testing.T) {
	cases := []struct {
		text    string
		energy  EnergyLevel
		minutes int
		area    FocusArea
	}{
		{"I'm exhausted but have 15 minutes for emails", EnergySluggish, 15, AreaAdmin},
		{"feeling WIRED, got half hour to write", EnergyWired, 30, AreaCreative},
		{"motivated! one hour of data analysis", EnergyEnergized, 60, AreaAnalytical},
		{"pretty stressed, 45 min, need to organize", EnergyAnxious, 45, AreaAdmin},
		{"can't sit still today", EnergyWired, 30, AreaAny},
		{"forty-five minutes of research", EnergyBalanced, 45, AreaAnalytical},
	}

	for _, tc := range cases {
		energy, minutes, area := ParseQuery(tc.text)
		if energy != tc.energy || minutes != tc.minutes || area != tc.area {
			t.Errorf("%q: got %s/%d/%s, want %s/%d/%s",
				tc.text, energy, minutes, area, tc.energy, tc.minutes, tc.area)
		}
	}
}

func TestParseQueryFirstMatchWins(t *testing.T) {
	// "tired" is checked before "wired" territory, and 15 before 60.
	energy, minutes, _ := ParseQuery("tired but also excited, 15 or 60 minutes")
	if energy != EnergySluggish {
		t.Fatalf("expected sluggish to win, got %s", energy)
	}
	if minutes != 15 {
		t.Fatalf("expected 15 to win, got %d", minutes)
	}
}
