package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/storage"
	"github.com/yourname/wellnessgrid/internal/toolpreset"
)

var validate = validator.New()

type EntryRequest struct {
	ToolID    string         `json:"tool_id" validate:"required"`
	Timestamp time.Time      `json:"timestamp" validate:"required"`
	Data      map[string]any `json:"data" validate:"required"`
}

func ValidateEntryRequest(body *EntryRequest) error {
	return validate.Struct(body)
}

func CreateEntry(ctx context.Context, entryRepo storage.EntryRepository, user *internal.User, body *EntryRequest) (*internal.TrackingEntry, error) {
	entry := &internal.TrackingEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ToolID:    body.ToolID,
		Timestamp: body.Timestamp,
		Data:      body.Data,
		CreatedAt: time.Now(),
	}
	if err := entryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

type UserToolRequest struct {
	ToolID        string   `json:"tool_id" validate:"required"`
	ReminderTimes []string `json:"reminder_times,omitempty" validate:"omitempty,dive,required"`
}

func ValidateUserToolRequest(req *UserToolRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	for _, r := range req.ReminderTimes {
		if _, err := time.Parse(reminderLayout, r); err != nil {
			return err
		}
	}
	return nil
}

// EnableTool turns a preset into an enabled tool for the user. The tool must
// exist in the static catalog; reminder times default from the preset when
// none are given.
func EnableTool(ctx context.Context, toolRepo storage.UserToolRepository, user *internal.User, req *UserToolRequest) (*internal.UserTool, error) {
	preset, ok := toolpreset.Get(req.ToolID)
	if !ok {
		return nil, internal.NewAppError(400, "unknown tool: "+req.ToolID)
	}
	settings := preset.DefaultSettings
	if len(req.ReminderTimes) > 0 {
		settings.ReminderTimes = req.ReminderTimes
	}
	tool := &internal.UserTool{
		ToolID:       preset.ID,
		UserID:       user.ID,
		ToolName:     preset.Name,
		ToolCategory: string(preset.Type),
		Settings:     settings,
		CreatedAt:    time.Now(),
	}
	if err := toolRepo.SetUserTool(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}
