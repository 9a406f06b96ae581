package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/toolpreset"
)

// MaxActions caps the composed dashboard list.
const MaxActions = 4

const reminderLayout = "15:04"

var priorityRank = map[internal.ActionPriority]int{
	internal.PriorityUrgent: 0,
	internal.PriorityHigh:   1,
	internal.PriorityMedium: 2,
	internal.PriorityLow:    3,
}

// ComposeActions turns the entry snapshot and enabled tools into a ranked list
// of recommended actions for the dashboard. Rules fire in a fixed order, the
// list is stably sorted by priority, and at most MaxActions survive.
func ComposeActions(tools []internal.UserTool, entries []internal.TrackingEntry, now time.Time) []internal.Action {
	actions := []internal.Action{}

	if len(tools) == 0 {
		actions = append(actions, internal.Action{
			ID:          uuid.NewString(),
			Type:        "tool_setup",
			Title:       "Set Up Your Tracking Tools",
			Description: "Enable a tracking tool to start building your health picture.",
			Priority:    internal.PriorityHigh,
			Action:      "setup",
		})
	} else {
		for _, tool := range tools {
			if countEntriesOnDay(entries, tool.ToolID, now) > 0 {
				continue
			}
			description := "No tracking recorded today"
			if next, ok := nextReminder(tool.Settings.ReminderTimes, now); ok {
				description = fmt.Sprintf("Next reminder at %s", next)
			}
			actions = append(actions, internal.Action{
				ID:          uuid.NewString(),
				Type:        "tool_usage",
				Title:       fmt.Sprintf("Log Your %s", tool.ToolName),
				Description: description,
				Priority:    internal.PriorityHigh,
				ToolID:      tool.ToolID,
				Action:      "track",
			})
		}
	}

	for _, tool := range tools {
		if toolpreset.TypeOf(tool.ToolID) != toolpreset.TypeMedication {
			continue
		}
		missed := missedReminders(tool, entries, now)
		if missed == 0 {
			continue
		}
		actions = append(actions, internal.Action{
			ID:          uuid.NewString(),
			Type:        "overdue_medication",
			Title:       "Overdue Medication",
			Description: fmt.Sprintf("%d medication reminders missed today", missed),
			Priority:    internal.PriorityUrgent,
			ToolID:      tool.ToolID,
			Action:      "log_medication",
		})
	}

	if action, ok := moodPatternAction(entries); ok {
		actions = append(actions, action)
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return priorityRank[actions[i].Priority] < priorityRank[actions[j].Priority]
	})
	if len(actions) > MaxActions {
		actions = actions[:MaxActions]
	}
	return actions
}

func countEntriesOnDay(entries []internal.TrackingEntry, toolID string, day time.Time) int {
	key := day.Format(dayLayout)
	loc := day.Location()
	count := 0
	for _, e := range entries {
		if e.ToolID == toolID && e.Timestamp.In(loc).Format(dayLayout) == key {
			count++
		}
	}
	return count
}

// nextReminder returns the first configured "HH:MM" reminder still ahead of
// now today. Malformed strings are skipped, never an error.
func nextReminder(reminderTimes []string, now time.Time) (string, bool) {
	var best time.Time
	found := false
	for _, r := range reminderTimes {
		t, ok := reminderAt(r, now)
		if !ok || !t.After(now) {
			continue
		}
		if !found || t.Before(best) {
			best = t
			found = true
		}
	}
	if !found {
		return "", false
	}
	return best.Format(reminderLayout), true
}

// missedReminders counts reminder times already passed today with no entry
// logged at or after them.
func missedReminders(tool internal.UserTool, entries []internal.TrackingEntry, now time.Time) int {
	missed := 0
	for _, r := range tool.Settings.ReminderTimes {
		t, ok := reminderAt(r, now)
		if !ok || t.After(now) {
			continue
		}
		if !hasEntrySince(entries, tool.ToolID, t, now) {
			missed++
		}
	}
	return missed
}

func reminderAt(hhmm string, day time.Time) (time.Time, bool) {
	parsed, err := time.Parse(reminderLayout, hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), true
}

func hasEntrySince(entries []internal.TrackingEntry, toolID string, since, until time.Time) bool {
	for _, e := range entries {
		if e.ToolID != toolID {
			continue
		}
		ts := e.Timestamp.In(until.Location())
		if !ts.Before(since) && !ts.After(until) {
			return true
		}
	}
	return false
}

// moodPatternAction fires when at least 3 recent entries exist, at least 2 of
// them are mood entries, and their mean mood is below the low threshold.
func moodPatternAction(entries []internal.TrackingEntry) (internal.Action, bool) {
	if len(entries) < 3 {
		return internal.Action{}, false
	}
	moodCount := 0
	var sum float64
	valid := 0
	for _, e := range entries {
		if toolpreset.TypeOf(e.ToolID) != toolpreset.TypeMood {
			continue
		}
		moodCount++
		if v, ok := numberField(e.Data, "mood"); ok {
			sum += v
			valid++
		}
	}
	if moodCount < 2 || valid == 0 {
		return internal.Action{}, false
	}
	if mean := sum / float64(valid); mean >= MoodLow {
		return internal.Action{}, false
	}
	return internal.Action{
		ID:          uuid.NewString(),
		Type:        "insight",
		Title:       "Mood Pattern Detected",
		Description: "Your mood has been lower than usual lately. Consider reaching out to someone you trust.",
		Priority:    internal.PriorityMedium,
		Action:      "view_insights",
	}, true
}
