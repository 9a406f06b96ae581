package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/toolpreset"
)

func TestExtractValueGlucose(t *testing.T) {
	entry := internal.TrackingEntry{Data: map[string]any{"glucose_level": 145.0}}
	v, ok := ExtractValue(toolpreset.TypeGlucose, entry)
	assert.True(t, ok)
	assert.Equal(t, 145.0, v)
}

func TestExtractValueIntPayload(t *testing.T) {
	// File fixtures carry ints; JSON decoding carries float64. Both must work.
	entry := internal.TrackingEntry{Data: map[string]any{"glucose_level": 145}}
	v, ok := ExtractValue(toolpreset.TypeGlucose, entry)
	assert.True(t, ok)
	assert.Equal(t, 145.0, v)
}

func TestExtractValueMissingField(t *testing.T) {
	entry := internal.TrackingEntry{Data: map[string]any{"mood": 7.0}}
	_, ok := ExtractValue(toolpreset.TypeGlucose, entry)
	assert.False(t, ok)
}

func TestExtractValueNilData(t *testing.T) {
	entry := internal.TrackingEntry{}
	_, ok := ExtractValue(toolpreset.TypeGlucose, entry)
	assert.False(t, ok)
}

func TestExtractValueNonNumeric(t *testing.T) {
	entry := internal.TrackingEntry{Data: map[string]any{"glucose_level": "145"}}
	_, ok := ExtractValue(toolpreset.TypeGlucose, entry)
	assert.False(t, ok)
}

func TestExtractValueNullField(t *testing.T) {
	entry := internal.TrackingEntry{Data: map[string]any{"glucose_level": nil}}
	_, ok := ExtractValue(toolpreset.TypeGlucose, entry)
	assert.False(t, ok)
}

func TestExtractValueAdherence(t *testing.T) {
	v, ok := ExtractValue(toolpreset.TypeMedication, internal.TrackingEntry{Data: map[string]any{"adherence": true}})
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = ExtractValue(toolpreset.TypeMedication, internal.TrackingEntry{Data: map[string]any{"adherence": false}})
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestExtractValueGenericToolHasNoMetric(t *testing.T) {
	entry := internal.TrackingEntry{Data: map[string]any{"anything": 1.0}}
	_, ok := ExtractValue(toolpreset.TypeGeneric, entry)
	assert.False(t, ok)
}

func TestClassifyEntryBloodPressure(t *testing.T) {
	high := internal.TrackingEntry{Data: map[string]any{"systolic": 135.0, "diastolic": 95.0}}
	status, ok := ClassifyEntry(toolpreset.TypeBloodPressure, high)
	assert.True(t, ok)
	assert.Equal(t, internal.StatusHigh, status)

	normal := internal.TrackingEntry{Data: map[string]any{"systolic": 120.0, "diastolic": 80.0}}
	status, ok = ClassifyEntry(toolpreset.TypeBloodPressure, normal)
	assert.True(t, ok)
	assert.Equal(t, internal.StatusNormal, status)
}

func TestClassifyEntryPainBoundaries(t *testing.T) {
	mk := func(level float64) internal.TrackingEntry {
		return internal.TrackingEntry{Data: map[string]any{"pain_level": level}}
	}

	status, _ := ClassifyEntry(toolpreset.TypePain, mk(7))
	assert.Equal(t, internal.StatusHigh, status) // >= 7 is high

	status, _ = ClassifyEntry(toolpreset.TypePain, mk(2.9))
	assert.Equal(t, internal.StatusLow, status)

	status, _ = ClassifyEntry(toolpreset.TypePain, mk(5))
	assert.Equal(t, internal.StatusNormal, status)
}
