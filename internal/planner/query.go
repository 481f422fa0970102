package planner

import "strings"

// keyword tables for free-text parsing. Matching is case-insensitive
// substring, first match wins, and every field has an explicit default.

var energyKeywords = []struct {
	words []string
	level EnergyLevel
}{
	{[]string{"tired", "exhausted", "sluggish"}, EnergySluggish},
	{[]string{"wired", "restless", "can't sit still"}, EnergyWired},
	{[]string{"energized", "motivated", "excited"}, EnergyEnergized},
	{[]string{"anxious", "worried", "stressed"}, EnergyAnxious},
}

var timeKeywords = []struct {
	words   []string
	minutes int
}{
	{[]string{"15", "fifteen"}, 15},
	{[]string{"30", "thirty", "half hour"}, 30},
	{[]string{"45", "forty-five"}, 45},
	{[]string{"60", "hour", "sixty"}, 60},
}

var areaKeywords = []struct {
	words []string
	area  FocusArea
}{
	{[]string{"creative", "art", "write", "writing"}, AreaCreative},
	{[]string{"analytical", "analysis", "data", "research"}, AreaAnalytical},
	{[]string{"admin", "email", "organize"}, AreaAdmin},
}

// ParseQuery infers session inputs from a free-text description like
// "I'm exhausted but have half an hour for emails". Unrecognized text
// falls back to balanced energy, 30 minutes, any area.
func ParseQuery(freeText string) (EnergyLevel, int, FocusArea) {
	text := strings.ToLower(freeText)

	energy := EnergyBalanced
	for _, entry := range energyKeywords {
		if containsAny(text, entry.words) {
			energy = entry.level
			break
		}
	}

	minutes := 30
	for _, entry := range timeKeywords {
		if containsAny(text, entry.words) {
			minutes = entry.minutes
			break
		}
	}

	area := AreaAny
	for _, entry := range areaKeywords {
		if containsAny(text, entry.words) {
			area = entry.area
			break
		}
	}

	return energy, minutes, area
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
