package storage

import (
	"context"
	"time"

	"github.com/yourname/wellnessgrid/internal"
)

// EntryRepository persists tracking entries. ListEntries returns entries
// newest-first; toolID filters to one tool when non-empty, and a non-zero
// since limits to entries at or after that instant.
type EntryRepository interface {
	SaveEntry(ctx context.Context, entry *internal.TrackingEntry) error
	ListEntries(ctx context.Context, userID, toolID string, since time.Time) ([]internal.TrackingEntry, error)
}

type UserToolRepository interface {
	SetUserTool(ctx context.Context, tool *internal.UserTool) error
	ListUserTools(ctx context.Context, userID string) ([]internal.UserTool, error)
}

type UserRepository interface {
	GetUserByToken(ctx context.Context, token string) (*internal.User, error)
}
