package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/food-finder/internal/dto"
	"github.com/octobees/food-finder/internal/entity"
)

// SearchLogsRepository persists search attempts.
type SearchLogsRepository interface {
	Record(ctx context.Context, log *entity.SearchLog) error
	List(ctx context.Context, filter dto.SearchLogFilter) ([]entity.SearchLog, error)
}

// PGXSearchLogsRepository implements SearchLogsRepository using pgx.
type PGXSearchLogsRepository struct {
	pool pgxPool
}

// NewPGXSearchLogsRepository wires a pgx backed repository.
func NewPGXSearchLogsRepository(pool *pgxpool.Pool) *PGXSearchLogsRepository {
	return &PGXSearchLogsRepository{pool: pool}
}

const searchLogColumns = `id, request_id, city, district, cuisine, budget, min_rating, keyword, status, reference_count, dropped_chunks, latency_ms, error_message, created_at`

// Record inserts a search log row, assigning an id when missing.
func (r *PGXSearchLogsRepository) Record(ctx context.Context, log *entity.SearchLog) error {
	if log == nil {
		return errors.New("search log payload is nil")
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO search_logs (id, request_id, city, district, cuisine, budget, min_rating, keyword, status, reference_count, dropped_chunks, latency_ms, error_message)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING created_at
    `, log.ID, log.RequestID, log.City, log.District, log.Cuisine, log.Budget, log.MinRating, log.Keyword,
		log.Status, log.ReferenceCount, log.DroppedChunks, log.LatencyMS, log.ErrorMessage)

	if err := row.Scan(&log.CreatedAt); err != nil {
		return fmt.Errorf("insert search log: %w", err)
	}
	return nil
}

// List returns search logs newest first.
func (r *PGXSearchLogsRepository) List(ctx context.Context, filter dto.SearchLogFilter) ([]entity.SearchLog, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 3)
	idx := 1

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city = $%d", idx))
		args = append(args, filter.City)
		idx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}

	query := "SELECT " + searchLogColumns + " FROM search_logs"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", idx)
	args = append(args, filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list search logs: %w", err)
	}
	defer rows.Close()

	return scanSearchLogs(rows)
}

func scanSearchLogs(rows pgx.Rows) ([]entity.SearchLog, error) {
	logs := make([]entity.SearchLog, 0)
	for rows.Next() {
		var log entity.SearchLog
		if err := rows.Scan(
			&log.ID, &log.RequestID, &log.City, &log.District, &log.Cuisine, &log.Budget, &log.MinRating,
			&log.Keyword, &log.Status, &log.ReferenceCount, &log.DroppedChunks, &log.LatencyMS,
			&log.ErrorMessage, &log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan search log row: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search logs: %w", err)
	}
	return logs, nil
}
