package service

import (
	"time"

	"github.com/yourname/wellnessgrid/internal"
)

// StreakLookbackDays bounds the backward scan. Streaks longer than this are
// not representable; the cap is intentional.
const StreakLookbackDays = 30

const dayLayout = "2006-01-02"

// CurrentStreak counts consecutive calendar days with at least one entry for
// the tool, scanning backward from now. A missing entry for today does not
// break the streak (the user may simply not have logged yet); the first
// missing prior day does. Day keys use the local calendar date of now's
// location, never a UTC shift.
func CurrentStreak(entries []internal.TrackingEntry, toolID string, now time.Time) int {
	loc := now.Location()
	days := make(map[string]bool)
	for _, e := range entries {
		if e.ToolID != toolID {
			continue
		}
		days[e.Timestamp.In(loc).Format(dayLayout)] = true
	}

	streak := 0
	for offset := 0; offset < StreakLookbackDays; offset++ {
		key := now.AddDate(0, 0, -offset).Format(dayLayout)
		if days[key] {
			streak++
			continue
		}
		if offset == 0 {
			// Today has no entry yet; keep checking yesterday.
			continue
		}
		break
	}
	return streak
}

// Streaks computes the streak record for every enabled tool.
func Streaks(entries []internal.TrackingEntry, tools []internal.UserTool, now time.Time) []internal.StreakRecord {
	out := make([]internal.StreakRecord, 0, len(tools))
	for _, t := range tools {
		out = append(out, internal.StreakRecord{
			ToolID:        t.ToolID,
			CurrentStreak: CurrentStreak(entries, t.ToolID, now),
		})
	}
	return out
}
