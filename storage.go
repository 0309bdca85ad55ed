package toolloop

import (
	"context"
	"time"
)

// RunRecord is one persisted transcript row: the user message, the tool
// routed through (if any), its serialized result, and the final answer.
type RunRecord struct {
	ID          string `gorm:"primaryKey"`
	RunID       string `gorm:"uniqueIndex"`
	UserMessage string
	ToolName    string
	ToolResult  string
	FinalAnswer string
	CreatedAt   time.Time
}

// RunStore persists one transcript row per agent run.
type RunStore interface {
	SaveRun(ctx context.Context, rec RunRecord) error
	GetRuns(ctx context.Context, limit int, offset int) ([]RunRecord, error)
}
