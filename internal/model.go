package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// TrackingEntry is one timestamped record a user logged for a tool. Data is an
// open payload whose keys depend on the tool family (e.g. glucose_level, mood).
// Entries are immutable once created; the analytics layer only ever reads them.
type TrackingEntry struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	ToolID    string         `json:"tool_id"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

type ToolSettings struct {
	ReminderTimes []string `json:"reminder_times,omitempty"` // 24h "HH:MM"
}

// UserTool is a tracking tool the user has enabled.
type UserTool struct {
	ToolID       string       `json:"tool_id"`
	UserID       string       `json:"user_id"`
	ToolName     string       `json:"tool_name"`
	ToolCategory string       `json:"tool_category"`
	Settings     ToolSettings `json:"settings"`
	CreatedAt    time.Time    `json:"created_at"`
}

type InsightType string

const (
	InsightAverage    InsightType = "average"
	InsightWarning    InsightType = "warning"
	InsightPercentage InsightType = "percentage"
	InsightInfo       InsightType = "info"
)

type MetricStatus string

const (
	StatusNormal MetricStatus = "normal"
	StatusHigh   MetricStatus = "high"
	StatusLow    MetricStatus = "low"
)

// Insight is a derived, human-readable statistic or alert. Recomputed on every
// request, never persisted.
type Insight struct {
	Type   InsightType  `json:"type"`
	Title  string       `json:"title"`
	Value  string       `json:"value"`
	Status MetricStatus `json:"status"`
}

// ToolStats holds per-tool descriptive statistics over one time window.
// TotalEntries counts every entry inside the window for the tool, including
// entries whose metric field is missing; Average divides over valid values
// only.
type ToolStats struct {
	TotalEntries  int          `json:"total_entries"`
	AveragePerDay float64      `json:"average_per_day"`
	Average       float64      `json:"average"`
	HighCount     int          `json:"high_count"`
	LowCount      int          `json:"low_count"`
	Status        MetricStatus `json:"status"`
}

type StreakRecord struct {
	ToolID        string `json:"tool_id"`
	CurrentStreak int    `json:"current_streak"`
}

// ToolAnalytics is the per-tool bundle rendered on the insights page.
type ToolAnalytics struct {
	ToolID   string    `json:"tool_id"`
	ToolName string    `json:"tool_name"`
	Stats    ToolStats `json:"stats"`
	Insights []Insight `json:"insights"`
	Streak   int       `json:"streak"`
}

type ActionPriority string

const (
	PriorityUrgent ActionPriority = "urgent"
	PriorityHigh   ActionPriority = "high"
	PriorityMedium ActionPriority = "medium"
	PriorityLow    ActionPriority = "low"
)

// Action is a ranked recommendation shown on the dashboard.
type Action struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    ActionPriority `json:"priority"`
	ToolID      string         `json:"tool_id,omitempty"`
	Action      string         `json:"action"`
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
