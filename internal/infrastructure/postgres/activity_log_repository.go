package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo sink append-only de auditoría sobre PostgreSQL.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de auditoría.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Insert añade una entrada de auditoría.
func (r *ActivityLogRepo) Insert(ctx context.Context, log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, action, target, details, timestamp)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, log.UserID, log.Action, log.Target, log.Details, log.Timestamp).Scan(&log.ID); err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas entradas con username y rol resueltos en
// lectura (join, nunca copia cacheada que pueda quedar obsoleta).
func (r *ActivityLogRepo) ListRecent(ctx context.Context, limit int) ([]repository.ActivityLogRow, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT a.id, a.user_id, a.action, a.target, COALESCE(a.details, ''), a.timestamp, u.username, u.role
		FROM activity_logs a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.timestamp DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var out []repository.ActivityLogRow
	for rows.Next() {
		var row repository.ActivityLogRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.Action, &row.Target, &row.Details, &row.Timestamp, &row.Username, &row.UserRole); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
