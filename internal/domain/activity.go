package domain

import "time"

type LogLevel string

const (
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// ActivityLog records who did what in which module. Rows are append-only
// and pruned by age.
type ActivityLog struct {
	ID        int64     `json:"id"`
	Level     LogLevel  `json:"level"`
	Action    string    `json:"action"`
	Module    string    `json:"module"`
	UserID    *int64    `json:"user_id,omitempty"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
