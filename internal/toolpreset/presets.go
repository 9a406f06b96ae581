// Package toolpreset holds the static tool catalog. Presets are constant
// configuration; they decide which metric extractor applies to a tool and are
// never mutated at runtime.
package toolpreset

import (
	"sort"

	"github.com/yourname/wellnessgrid/internal"
)

type ToolType string

const (
	TypeGlucose       ToolType = "glucose_tracker"
	TypeBloodPressure ToolType = "blood_pressure_tracker"
	TypeMood          ToolType = "mood_tracker"
	TypePain          ToolType = "pain_tracker"
	TypeMedication    ToolType = "medication_tracker"
	TypeGeneric       ToolType = "generic"
)

type Preset struct {
	ID              string                `json:"id"`
	Type            ToolType              `json:"type"`
	Name            string                `json:"name"`
	DefaultSettings internal.ToolSettings `json:"default_settings"`
}

var presets = map[string]Preset{
	"glucose-tracker": {
		ID:   "glucose-tracker",
		Type: TypeGlucose,
		Name: "Glucose Tracker",
	},
	"blood-pressure-tracker": {
		ID:   "blood-pressure-tracker",
		Type: TypeBloodPressure,
		Name: "Blood Pressure Tracker",
	},
	"mood-tracker": {
		ID:   "mood-tracker",
		Type: TypeMood,
		Name: "Mood Tracker",
	},
	"pain-tracker": {
		ID:   "pain-tracker",
		Type: TypePain,
		Name: "Pain Tracker",
	},
	"medication-tracker": {
		ID:   "medication-tracker",
		Type: TypeMedication,
		Name: "Medication Tracker",
		DefaultSettings: internal.ToolSettings{
			ReminderTimes: []string{"08:00", "20:00"},
		},
	},
}

func Get(toolID string) (Preset, bool) {
	p, ok := presets[toolID]
	return p, ok
}

// TypeOf resolves a tool ID to its family; unknown tools fall back to the
// generic family, which has no metric extractor.
func TypeOf(toolID string) ToolType {
	if p, ok := presets[toolID]; ok {
		return p.Type
	}
	return TypeGeneric
}

func All() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
