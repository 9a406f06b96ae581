package service

import (
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/toolpreset"
)

// Metric thresholds per tool family. Fixed values, shared with the insight
// texts in aggregate.go.
const (
	GlucoseLow    = 70.0
	GlucoseHigh   = 180.0
	SystolicHigh  = 140.0
	DiastolicHigh = 90.0
	MoodLow       = 4.0
	MoodHigh      = 7.0
	PainHigh      = 7.0
	PainLow       = 3.0
)

// numberField pulls a numeric value out of an open payload. JSON decoding
// yields float64, but file fixtures and tests may carry int values too.
// Missing, null, or non-numeric fields report no value rather than zero.
func numberField(data map[string]any, key string) (float64, bool) {
	if data == nil {
		return 0, false
	}
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

func boolField(data map[string]any, key string) (bool, bool) {
	if data == nil {
		return false, false
	}
	v, ok := data[key].(bool)
	return v, ok
}

// ExtractValue returns the primary metric of an entry for its tool family:
// glucose mg/dL, systolic mmHg, mood 1-10, pain 0-10, or adherence as 1/0.
// Entries with a missing or malformed field report no value and are excluded
// from averages by the aggregator; they are never an error.
func ExtractValue(toolType toolpreset.ToolType, entry internal.TrackingEntry) (float64, bool) {
	switch toolType {
	case toolpreset.TypeGlucose:
		return numberField(entry.Data, "glucose_level")
	case toolpreset.TypeBloodPressure:
		return numberField(entry.Data, "systolic")
	case toolpreset.TypeMood:
		return numberField(entry.Data, "mood")
	case toolpreset.TypePain:
		return numberField(entry.Data, "pain_level")
	case toolpreset.TypeMedication:
		adherent, ok := boolField(entry.Data, "adherence")
		if !ok {
			return 0, false
		}
		if adherent {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ClassifyEntry grades one entry against its family thresholds. Blood
// pressure is the only family classified on two fields (high if systolic>140
// OR diastolic>90). Entries without a valid value report ok=false.
func ClassifyEntry(toolType toolpreset.ToolType, entry internal.TrackingEntry) (internal.MetricStatus, bool) {
	switch toolType {
	case toolpreset.TypeGlucose:
		v, ok := numberField(entry.Data, "glucose_level")
		if !ok {
			return internal.StatusNormal, false
		}
		return classifyGlucose(v), true
	case toolpreset.TypeBloodPressure:
		sys, okSys := numberField(entry.Data, "systolic")
		dia, okDia := numberField(entry.Data, "diastolic")
		if !okSys && !okDia {
			return internal.StatusNormal, false
		}
		if (okSys && sys > SystolicHigh) || (okDia && dia > DiastolicHigh) {
			return internal.StatusHigh, true
		}
		return internal.StatusNormal, true
	case toolpreset.TypeMood:
		v, ok := numberField(entry.Data, "mood")
		if !ok {
			return internal.StatusNormal, false
		}
		return classifyMood(v), true
	case toolpreset.TypePain:
		v, ok := numberField(entry.Data, "pain_level")
		if !ok {
			return internal.StatusNormal, false
		}
		return classifyPain(v), true
	default:
		return internal.StatusNormal, false
	}
}

func classifyGlucose(v float64) internal.MetricStatus {
	if v < GlucoseLow {
		return internal.StatusLow
	}
	if v > GlucoseHigh {
		return internal.StatusHigh
	}
	return internal.StatusNormal
}

func classifyMood(v float64) internal.MetricStatus {
	if v < MoodLow {
		return internal.StatusLow
	}
	if v > MoodHigh {
		return internal.StatusHigh
	}
	return internal.StatusNormal
}

func classifyPain(v float64) internal.MetricStatus {
	if v >= PainHigh {
		return internal.StatusHigh
	}
	if v < PainLow {
		return internal.StatusLow
	}
	return internal.StatusNormal
}
