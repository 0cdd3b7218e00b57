// Package postgres persists audit events in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the pgx stdlib driver under the name "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"

	audit "watchgate/pkg/platform/audit"
)

// Store appends audit events to the screening_audit table.
type Store struct {
	db *sql.DB
}

// Open connects via the pgx stdlib driver and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// New wraps an existing handle, mainly for tests.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS screening_audit (
	id          UUID PRIMARY KEY,
	action      TEXT        NOT NULL,
	ts          TIMESTAMPTZ NOT NULL,
	run_id      UUID        NOT NULL,
	query_hash  TEXT        NOT NULL,
	country     TEXT        NOT NULL DEFAULT '',
	source      TEXT        NOT NULL DEFAULT '',
	reason      TEXT        NOT NULL DEFAULT '',
	ofac_hit    BOOLEAN     NOT NULL DEFAULT FALSE,
	un_hit      BOOLEAN     NOT NULL DEFAULT FALSE,
	score       INTEGER     NOT NULL DEFAULT 0,
	request_id  TEXT        NOT NULL DEFAULT '',
	client_ip   TEXT        NOT NULL DEFAULT '',
	user_agent  TEXT        NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS screening_audit_run_id_idx ON screening_audit (run_id);
`

// EnsureSchema creates the audit table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	const query = `
		INSERT INTO screening_audit
			(id, action, ts, run_id, query_hash, country, source, reason,
			 ofac_hit, un_hit, score, request_id, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		string(event.Action),
		event.Timestamp,
		event.RunID,
		event.QueryHash,
		event.Country,
		event.Source,
		event.Reason,
		event.OFACHit,
		event.UNHit,
		event.Score,
		event.RequestID,
		event.ClientIP,
		event.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListByRun returns all events recorded for one screening run, oldest first.
func (s *Store) ListByRun(ctx context.Context, runID string) ([]audit.Event, error) {
	const query = `
		SELECT id, action, ts, run_id, query_hash, country, source, reason,
		       ofac_hit, un_hit, score, request_id, client_ip, user_agent
		FROM screening_audit
		WHERE run_id = $1
		ORDER BY ts
	`
	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var e audit.Event
		var action string
		if err := rows.Scan(
			&e.ID, &action, &e.Timestamp, &e.RunID, &e.QueryHash, &e.Country,
			&e.Source, &e.Reason, &e.OFACHit, &e.UNHit, &e.Score,
			&e.RequestID, &e.ClientIP, &e.UserAgent,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Action = audit.Action(action)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
