package service

import (
	"fmt"
	"math"
	"time"

	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/toolpreset"
)

const DefaultWindowDays = 7

// WindowDays the API accepts; anything else falls back to the default.
var AllowedWindows = map[int]bool{7: true, 14: true, 30: true, 90: true}

// Aggregate computes descriptive statistics and insight cards for one tool
// over the trailing window. entries is the full fetched snapshot; filtering to
// the tool and window happens here. TotalEntries counts every filtered entry;
// Average divides only over entries with a valid extracted value, so a
// malformed payload dilutes neither.
func Aggregate(entries []internal.TrackingEntry, toolID string, windowDays int, now time.Time) (internal.ToolStats, []internal.Insight) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	toolType := toolpreset.TypeOf(toolID)
	cutoff := now.AddDate(0, 0, -windowDays)

	var filtered []internal.TrackingEntry
	for _, e := range entries {
		if e.ToolID != toolID {
			continue
		}
		if e.Timestamp.Before(cutoff) {
			continue
		}
		filtered = append(filtered, e)
	}

	stats := internal.ToolStats{Status: internal.StatusNormal}
	stats.TotalEntries = len(filtered)
	stats.AveragePerDay = float64(stats.TotalEntries) / float64(windowDays)
	if stats.TotalEntries == 0 {
		return stats, []internal.Insight{}
	}

	var sum float64
	valid := 0
	for _, e := range filtered {
		if v, ok := ExtractValue(toolType, e); ok {
			sum += v
			valid++
		}
		if status, ok := ClassifyEntry(toolType, e); ok {
			switch status {
			case internal.StatusHigh:
				stats.HighCount++
			case internal.StatusLow:
				stats.LowCount++
			}
		}
	}

	if valid > 0 {
		stats.Average = roundFor(toolType, sum/float64(valid))
	}

	insights := composeInsights(toolType, filtered, stats, valid)
	stats.Status = averageStatus(toolType, stats.Average, valid)
	return stats, insights
}

func averageStatus(toolType toolpreset.ToolType, avg float64, valid int) internal.MetricStatus {
	if valid == 0 {
		return internal.StatusNormal
	}
	switch toolType {
	case toolpreset.TypeGlucose:
		return classifyGlucose(avg)
	case toolpreset.TypeMood:
		return classifyMood(avg)
	case toolpreset.TypePain:
		return classifyPain(avg)
	default:
		return internal.StatusNormal
	}
}

// roundFor applies per-tool display rounding: glucose to whole mg/dL,
// mood/pain to one decimal, adherence rate to a whole percent.
func roundFor(toolType toolpreset.ToolType, v float64) float64 {
	switch toolType {
	case toolpreset.TypeGlucose, toolpreset.TypeBloodPressure:
		return math.Round(v)
	case toolpreset.TypeMood, toolpreset.TypePain:
		return math.Round(v*10) / 10
	case toolpreset.TypeMedication:
		// stored as 0..1 rate; surfaced as integer percent
		return math.Round(v * 100)
	default:
		return v
	}
}

func composeInsights(toolType toolpreset.ToolType, filtered []internal.TrackingEntry, stats internal.ToolStats, valid int) []internal.Insight {
	insights := []internal.Insight{}

	switch toolType {
	case toolpreset.TypeGlucose:
		if valid > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightAverage,
				Title:  "Average Glucose",
				Value:  fmt.Sprintf("%.0f mg/dL", stats.Average),
				Status: classifyGlucose(stats.Average),
			})
		}
		if stats.LowCount > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightWarning,
				Title:  "Low Readings",
				Value:  fmt.Sprintf("%d readings below %.0f mg/dL", stats.LowCount, GlucoseLow),
				Status: internal.StatusLow,
			})
		}
		if stats.HighCount > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightWarning,
				Title:  "High Readings",
				Value:  fmt.Sprintf("%d readings above %.0f mg/dL", stats.HighCount, GlucoseHigh),
				Status: internal.StatusHigh,
			})
		}

	case toolpreset.TypeBloodPressure:
		avgSys, okSys := meanOf(filtered, "systolic")
		avgDia, okDia := meanOf(filtered, "diastolic")
		if okSys && okDia {
			status := internal.StatusNormal
			if avgSys > SystolicHigh || avgDia > DiastolicHigh {
				status = internal.StatusHigh
			}
			insights = append(insights, internal.Insight{
				Type:   internal.InsightAverage,
				Title:  "Average Blood Pressure",
				Value:  fmt.Sprintf("%.0f/%.0f mmHg", math.Round(avgSys), math.Round(avgDia)),
				Status: status,
			})
		}
		if stats.HighCount > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightWarning,
				Title:  "Elevated Readings",
				Value:  fmt.Sprintf("%d elevated readings", stats.HighCount),
				Status: internal.StatusHigh,
			})
		}

	case toolpreset.TypeMood:
		if valid > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightAverage,
				Title:  "Average Mood",
				Value:  fmt.Sprintf("%.1f / 10", stats.Average),
				Status: classifyMood(stats.Average),
			})
		}
		if avgEnergy, ok := meanOf(filtered, "energy"); ok {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightInfo,
				Title:  "Average Energy",
				Value:  fmt.Sprintf("%.1f / 10", math.Round(avgEnergy*10)/10),
				Status: internal.StatusNormal,
			})
		}
		if stats.LowCount > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightWarning,
				Title:  "Low Mood Days",
				Value:  fmt.Sprintf("%d low mood entries", stats.LowCount),
				Status: internal.StatusLow,
			})
		}

	case toolpreset.TypePain:
		if valid > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightAverage,
				Title:  "Average Pain Level",
				Value:  fmt.Sprintf("%.1f / 10", stats.Average),
				Status: classifyPain(stats.Average),
			})
		}
		if stats.HighCount > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightWarning,
				Title:  "Severe Pain Days",
				Value:  fmt.Sprintf("%d severe pain entries", stats.HighCount),
				Status: internal.StatusHigh,
			})
		}

	case toolpreset.TypeMedication:
		if valid > 0 {
			insights = append(insights, internal.Insight{
				Type:   internal.InsightPercentage,
				Title:  "Medication Adherence",
				Value:  fmt.Sprintf("%.0f%%", stats.Average),
				Status: internal.StatusNormal,
			})
		}

	default:
		insights = append(insights, internal.Insight{
			Type:   internal.InsightInfo,
			Title:  "Entries Logged",
			Value:  fmt.Sprintf("%d entries", stats.TotalEntries),
			Status: internal.StatusNormal,
		})
	}

	return insights
}

func meanOf(entries []internal.TrackingEntry, field string) (float64, bool) {
	var sum float64
	count := 0
	for _, e := range entries {
		if v, ok := numberField(e.Data, field); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// BuildAnalytics assembles the per-tool insights-page bundle: aggregate stats,
// insight cards, and the current tracking streak for every enabled tool.
func BuildAnalytics(entries []internal.TrackingEntry, tools []internal.UserTool, windowDays int, now time.Time) []internal.ToolAnalytics {
	out := make([]internal.ToolAnalytics, 0, len(tools))
	for _, t := range tools {
		stats, insights := Aggregate(entries, t.ToolID, windowDays, now)
		out = append(out, internal.ToolAnalytics{
			ToolID:   t.ToolID,
			ToolName: t.ToolName,
			Stats:    stats,
			Insights: insights,
			Streak:   CurrentStreak(entries, t.ToolID, now),
		})
	}
	return out
}
