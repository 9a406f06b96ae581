package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"github.com/yourname/wellnessgrid/internal"
)

func setupTestStorage(t *testing.T) *FileStorage {
	dir := t.TempDir()
	usersFile := filepath.Join(dir, "users.json")
	entriesFile := filepath.Join(dir, "entries.json")
	toolsFile := filepath.Join(dir, "user_tools.json")
	require.NoError(t, os.WriteFile(usersFile, []byte(`[{"id":"u1","token":"MOCK-TOKEN","name":"Test User"}]`), 0644))

	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	s, err := NewFileStorage(usersFile, entriesFile, toolsFile, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndListEntries(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	entry := &internal.TrackingEntry{
		ID:        "e1",
		UserID:    "u1",
		ToolID:    "glucose-tracker",
		Timestamp: time.Now().Add(-1 * time.Hour),
		Data:      map[string]any{"glucose_level": 120.0},
	}
	require.NoError(t, s.SaveEntry(ctx, entry))

	entries, err := s.ListEntries(ctx, "u1", "", time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "glucose-tracker", entries[0].ToolID)
	assert.Equal(t, 120.0, entries[0].Data["glucose_level"])
}

func TestListEntriesOrderedDescending(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()
	now := time.Now()

	for i, offset := range []int{3, 1, 2} {
		require.NoError(t, s.SaveEntry(ctx, &internal.TrackingEntry{
			ID:        string(rune('a' + i)),
			UserID:    "u1",
			ToolID:    "mood-tracker",
			Timestamp: now.AddDate(0, 0, -offset),
			Data:      map[string]any{"mood": 5.0},
		}))
	}

	entries, err := s.ListEntries(ctx, "u1", "", time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
	assert.True(t, entries[1].Timestamp.After(entries[2].Timestamp))
}

func TestListEntriesFilters(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SaveEntry(ctx, &internal.TrackingEntry{
		ID: "recent", UserID: "u1", ToolID: "glucose-tracker",
		Timestamp: now.AddDate(0, 0, -1), Data: map[string]any{"glucose_level": 110.0},
	}))
	require.NoError(t, s.SaveEntry(ctx, &internal.TrackingEntry{
		ID: "old", UserID: "u1", ToolID: "glucose-tracker",
		Timestamp: now.AddDate(0, 0, -20), Data: map[string]any{"glucose_level": 130.0},
	}))
	require.NoError(t, s.SaveEntry(ctx, &internal.TrackingEntry{
		ID: "other-tool", UserID: "u1", ToolID: "mood-tracker",
		Timestamp: now.AddDate(0, 0, -1), Data: map[string]any{"mood": 6.0},
	}))

	byTool, err := s.ListEntries(ctx, "u1", "glucose-tracker", time.Time{})
	require.NoError(t, err)
	assert.Len(t, byTool, 2)

	byWindow, err := s.ListEntries(ctx, "u1", "glucose-tracker", now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, byWindow, 1)
	assert.Equal(t, "recent", byWindow[0].ID)

	unknown, err := s.ListEntries(ctx, "nobody", "", time.Time{})
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestUserToolsRoundtrip(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	tool := &internal.UserTool{
		ToolID:       "medication-tracker",
		UserID:       "u1",
		ToolName:     "Medication Tracker",
		ToolCategory: "medication_tracker",
		Settings:     internal.ToolSettings{ReminderTimes: []string{"08:00", "20:00"}},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.SetUserTool(ctx, tool))

	tools, err := s.ListUserTools(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, []string{"08:00", "20:00"}, tools[0].Settings.ReminderTimes)
}

func TestGetUserByToken(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	u, err := s.GetUserByToken(ctx, "MOCK-TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = s.GetUserByToken(ctx, "WRONG")
	assert.Error(t, err)
}

func TestCloseFlushesToDisk(t *testing.T) {
	dir := t.TempDir()
	usersFile := filepath.Join(dir, "users.json")
	entriesFile := filepath.Join(dir, "entries.json")
	toolsFile := filepath.Join(dir, "user_tools.json")

	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	s, err := NewFileStorage(usersFile, entriesFile, toolsFile, logger)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.SaveEntry(ctx, &internal.TrackingEntry{
		ID: "e1", UserID: "u1", ToolID: "pain-tracker",
		Timestamp: time.Now(), Data: map[string]any{"pain_level": 4.0},
	}))
	require.NoError(t, s.Close())

	info, err := os.Stat(entriesFile)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)

	// A fresh storage picks the entry back up.
	s2, err := NewFileStorage(usersFile, entriesFile, toolsFile, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })
	entries, err := s2.ListEntries(ctx, "u1", "", time.Time{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
