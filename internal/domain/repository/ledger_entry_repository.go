package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// LedgerEntryRepository define el puerto de persistencia de los dos journals
// (add_history y sell_history), discriminados por entity.EntryKind.
type LedgerEntryRepository interface {
	// Insert persiste la entrada y rellena e.ID.
	Insert(ctx context.Context, kind entity.EntryKind, e *entity.LedgerEntry) error
	// GetByIDForUpdate bloquea la fila de la entrada; un segundo borrador
	// concurrente espera aquí y encuentra la fila ya eliminada.
	GetByIDForUpdate(ctx context.Context, kind entity.EntryKind, id int64) (*entity.LedgerEntry, error)
	// Delete elimina la entrada; deleted=false si la fila ya no existe.
	Delete(ctx context.Context, kind entity.EntryKind, id int64) (deleted bool, err error)
}
