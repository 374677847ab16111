package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// OrderFilter filtros opcionales de listado de órdenes.
type OrderFilter struct {
	StartDate *string // fecha calendario YYYY-MM-DD
	EndDate   *string
	ProductID *int64
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	// List devuelve órdenes (más recientes primero) aplicando los filtros presentes.
	List(ctx context.Context, f OrderFilter) ([]*entity.Order, error)
}
