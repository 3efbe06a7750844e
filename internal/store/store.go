// Package store reads execution history from the workflow engine's database.
// The database is owned by the engine; this package issues a single read
// query and never writes.
package store

import (
	"context"

	"github.com/sells-group/leads-cli/internal/model"
)

// Store is the read-only view of the engine's execution history.
type Store interface {
	// ListExecutions returns up to limit of the most recent successful
	// executions of the given workflow, newest first, each joined to its
	// payload blob.
	ListExecutions(ctx context.Context, workflowID string, limit int) ([]model.Execution, error)

	Close() error
}
