package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const searchLogsSchema = `
CREATE TABLE IF NOT EXISTS search_logs (
    id              UUID PRIMARY KEY,
    request_id      TEXT NOT NULL DEFAULT '',
    city            TEXT NOT NULL,
    district        TEXT NOT NULL,
    cuisine         TEXT NOT NULL,
    budget          TEXT NOT NULL,
    min_rating      TEXT NOT NULL,
    keyword         TEXT NOT NULL DEFAULT '',
    status          TEXT NOT NULL,
    reference_count INTEGER NOT NULL DEFAULT 0,
    dropped_chunks  INTEGER NOT NULL DEFAULT 0,
    latency_ms      BIGINT NOT NULL DEFAULT 0,
    error_message   TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS search_logs_created_at_idx ON search_logs (created_at DESC);
CREATE INDEX IF NOT EXISTS search_logs_city_idx ON search_logs (city, created_at DESC);
`

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the tables the service writes to when they are missing.
func EnsureSchema(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, searchLogsSchema); err != nil {
		return fmt.Errorf("ensure search_logs schema: %w", err)
	}
	return nil
}
