package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ActivityLogRow es una entrada de auditoría unida a username y rol del actor
// (join en lectura).
type ActivityLogRow struct {
	entity.ActivityLog
	Username string
	UserRole string
}

// ActivityLogRepository sink append-only de auditoría.
type ActivityLogRepository interface {
	Insert(ctx context.Context, log *entity.ActivityLog) error
	// ListRecent devuelve las últimas entradas (más recientes primero).
	ListRecent(ctx context.Context, limit int) ([]ActivityLogRow, error)
}
