package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/leads-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite against the engine's
// database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens the engine's SQLite database at the given path. The handle
// is read-only at the pragma level so a misbehaving query can never touch
// the engine's data.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	// One connection per invocation; pragmas apply per connection.
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA query_only=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// The engine quotes its camelCase columns, so the query does too.
const sqliteListExecutions = `
SELECT e.id, e."startedAt", e."stoppedAt", e.status, d.data
FROM execution_entity e
JOIN execution_data d ON e.id = d."executionId"
WHERE e."workflowId" = ? AND e.status = 'success'
ORDER BY e."startedAt" DESC
LIMIT ?`

func (s *SQLiteStore) ListExecutions(ctx context.Context, workflowID string, limit int) ([]model.Execution, error) {
	rows, err := s.db.QueryContext(ctx, sqliteListExecutions, workflowID, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list executions")
	}
	defer rows.Close()

	var execs []model.Execution
	for rows.Next() {
		var e model.Execution
		var stoppedAt sql.NullString
		// id is INTEGER in the engine's sqlite schema; database/sql
		// converts it to string on scan.
		if err := rows.Scan(&e.ID, &e.StartedAt, &stoppedAt, &e.Status, &e.Data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan execution")
		}
		e.StoppedAt = stoppedAt.String
		execs = append(execs, e)
	}
	return execs, eris.Wrap(rows.Err(), "sqlite: list executions iterate")
}
