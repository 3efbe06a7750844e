package store

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/leads-cli/internal/model"
)

// pgPool is the subset of pgxpool.Pool used by PostgresStore, abstracted so
// tests can substitute a pgxmock pool.
type pgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresStore implements Store for engines running on Postgres.
type PostgresStore struct {
	pool pgPool
}

// NewPostgres creates a PostgresStore with a small read-only pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: connect")
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const pgListExecutions = `
SELECT e.id, e."startedAt", e."stoppedAt", e.status, d.data
FROM execution_entity e
JOIN execution_data d ON e.id = d."executionId"
WHERE e."workflowId" = $1 AND e.status = 'success'
ORDER BY e."startedAt" DESC
LIMIT $2`

func (s *PostgresStore) ListExecutions(ctx context.Context, workflowID string, limit int) ([]model.Execution, error) {
	rows, err := s.pool.Query(ctx, pgListExecutions, workflowID, limit)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list executions")
	}
	defer rows.Close()

	var execs []model.Execution
	for rows.Next() {
		var id, startedAt, stoppedAt any
		var e model.Execution
		if err := rows.Scan(&id, &startedAt, &stoppedAt, &e.Status, &e.Data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan execution")
		}
		e.ID = coerceID(id)
		e.StartedAt = coerceTimestamp(startedAt)
		e.StoppedAt = coerceTimestamp(stoppedAt)
		execs = append(execs, e)
	}
	return execs, eris.Wrap(rows.Err(), "postgres: list executions iterate")
}

// coerceID renders the execution id as a string whether the engine's schema
// uses an integer or text primary key.
func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case int64:
		return strconv.FormatInt(id, 10)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	default:
		return ""
	}
}

// coerceTimestamp renders a timestamptz scan result as fixed-width ISO-8601
// so downstream lexicographic sorting matches time order.
func coerceTimestamp(v any) string {
	switch ts := v.(type) {
	case time.Time:
		return ts.UTC().Format("2006-01-02T15:04:05.000Z")
	case string:
		return ts
	default:
		return ""
	}
}
