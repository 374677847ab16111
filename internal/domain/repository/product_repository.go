package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos ForUpdate bloquean la fila (SELECT ... FOR UPDATE) y solo tienen
// sentido dentro de una transacción del TxRunner: serializan las mutaciones
// concurrentes sobre el mismo producto.
type ProductRepository interface {
	// GetOrCreateForUpdate resuelve el producto por nombre creándolo con
	// acumulados en cero si no existe, y deja la fila bloqueada. Es el contrato
	// de upsert del ledger store (no existencia ad hoc en los callers).
	GetOrCreateForUpdate(ctx context.Context, name string) (*entity.Product, error)
	GetByNameForUpdate(ctx context.Context, name string) (*entity.Product, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	// UpdateTotals persiste los cinco acumulados del producto.
	UpdateTotals(ctx context.Context, p *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListNames(ctx context.Context) ([]string, error)
}
