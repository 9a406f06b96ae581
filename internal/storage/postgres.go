package storage

import (
	"context"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/wellnessgrid/internal"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// --- EntryRepository ---
func (p *PostgresStorage) SaveEntry(ctx context.Context, entry *internal.TrackingEntry) error {
	data, err := json.Marshal(entry.Data)
	if err != nil {
		return err
	}
	query, args, err := psql.Insert("tracking_entries").
		Columns("id", "user_id", "tool_id", "timestamp", "data", "created_at").
		Values(entry.ID, entry.UserID, entry.ToolID, entry.Timestamp, data, entry.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		p.logger.Errorf("failed to insert tracking entry: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListEntries(ctx context.Context, userID, toolID string, since time.Time) ([]internal.TrackingEntry, error) {
	builder := psql.Select("id", "user_id", "tool_id", "timestamp", "data", "created_at").
		From("tracking_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp DESC")
	if toolID != "" {
		builder = builder.Where(sq.Eq{"tool_id": toolID})
	}
	if !since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"timestamp": since})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var entries []internal.TrackingEntry
	if err := pgxscan.Select(ctx, p.pool, &entries, query, args...); err != nil {
		p.logger.Errorf("failed to query tracking entries: %v", err)
		return nil, err
	}
	if entries == nil {
		entries = []internal.TrackingEntry{}
	}
	return entries, nil
}

// --- UserToolRepository ---
func (p *PostgresStorage) SetUserTool(ctx context.Context, tool *internal.UserTool) error {
	settings, err := json.Marshal(tool.Settings)
	if err != nil {
		return err
	}
	query, args, err := psql.Insert("user_tools").
		Columns("tool_id", "user_id", "tool_name", "tool_category", "settings", "created_at").
		Values(tool.ToolID, tool.UserID, tool.ToolName, tool.ToolCategory, settings, tool.CreatedAt).
		Suffix("ON CONFLICT (user_id, tool_id) DO UPDATE SET tool_name = EXCLUDED.tool_name, tool_category = EXCLUDED.tool_category, settings = EXCLUDED.settings").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		p.logger.Errorf("failed to upsert user tool: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListUserTools(ctx context.Context, userID string) ([]internal.UserTool, error) {
	query, args, err := psql.Select("tool_id", "user_id", "tool_name", "tool_category", "settings", "created_at").
		From("user_tools").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("tool_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Errorf("failed to query user tools: %v", err)
		return nil, err
	}
	defer rows.Close()

	tools := []internal.UserTool{}
	for rows.Next() {
		var t internal.UserTool
		var settings []byte
		if err := rows.Scan(&t.ToolID, &t.UserID, &t.ToolName, &t.ToolCategory, &settings, &t.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan user tool: %v", err)
			return nil, err
		}
		if len(settings) > 0 {
			if err := json.Unmarshal(settings, &t.Settings); err != nil {
				p.logger.Errorf("failed to decode tool settings: %v", err)
				return nil, err
			}
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

// --- UserRepository ---
func (p *PostgresStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	query, args, err := psql.Select("id", "token", "name").
		From("users").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var u internal.User
	if err := pgxscan.Get(ctx, p.pool, &u, query, args...); err != nil {
		p.logger.Errorf("user not found: %v", err)
		return nil, err
	}
	return &u, nil
}

// --- Compile-time assertions ---
var _ EntryRepository = (*PostgresStorage)(nil)
var _ UserToolRepository = (*PostgresStorage)(nil)
var _ UserRepository = (*PostgresStorage)(nil)
