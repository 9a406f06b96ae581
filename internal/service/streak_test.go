package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/wellnessgrid/internal"
)

func entryOn(toolID string, day time.Time) internal.TrackingEntry {
	return internal.TrackingEntry{
		ID:        day.Format("20060102") + "-" + toolID,
		UserID:    "u1",
		ToolID:    toolID,
		Timestamp: day,
		Data:      map[string]any{"glucose_level": 120.0},
	}
}

func TestStreakEveryDayTracked(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	var entries []internal.TrackingEntry
	for offset := 0; offset <= 5; offset++ {
		entries = append(entries, entryOn("glucose-tracker", now.AddDate(0, 0, -offset)))
	}
	assert.Equal(t, 6, CurrentStreak(entries, "glucose-tracker", now))
}

func TestStreakTodayNotLoggedYet(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	var entries []internal.TrackingEntry
	for offset := 1; offset <= 4; offset++ {
		entries = append(entries, entryOn("glucose-tracker", now.AddDate(0, 0, -offset)))
	}
	// Today has no entry yet; the streak must survive.
	assert.Equal(t, 4, CurrentStreak(entries, "glucose-tracker", now))
}

func TestStreakBreaksOnGap(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	entries := []internal.TrackingEntry{
		entryOn("glucose-tracker", now),
		entryOn("glucose-tracker", now.AddDate(0, 0, -1)),
		// day -2 missing
		entryOn("glucose-tracker", now.AddDate(0, 0, -3)),
		entryOn("glucose-tracker", now.AddDate(0, 0, -4)),
	}
	assert.Equal(t, 2, CurrentStreak(entries, "glucose-tracker", now))
}

func TestStreakIgnoresOtherTools(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	entries := []internal.TrackingEntry{
		entryOn("mood-tracker", now),
		entryOn("mood-tracker", now.AddDate(0, 0, -1)),
	}
	assert.Equal(t, 0, CurrentStreak(entries, "glucose-tracker", now))
	assert.Equal(t, 2, CurrentStreak(entries, "mood-tracker", now))
}

func TestStreakCappedAtLookback(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	var entries []internal.TrackingEntry
	for offset := 0; offset < 45; offset++ {
		entries = append(entries, entryOn("glucose-tracker", now.AddDate(0, 0, -offset)))
	}
	assert.Equal(t, StreakLookbackDays, CurrentStreak(entries, "glucose-tracker", now))
}

func TestStreaksPerTool(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	entries := []internal.TrackingEntry{
		entryOn("glucose-tracker", now),
		entryOn("glucose-tracker", now.AddDate(0, 0, -1)),
	}
	tools := []internal.UserTool{
		{ToolID: "glucose-tracker", ToolName: "Glucose Tracker"},
		{ToolID: "mood-tracker", ToolName: "Mood Tracker"},
	}
	records := Streaks(entries, tools, now)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, records[0].CurrentStreak)
	assert.Equal(t, 0, records[1].CurrentStreak)
}
