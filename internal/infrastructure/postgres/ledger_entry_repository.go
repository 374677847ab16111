package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación del puerto LedgerEntryRepository sobre
// PostgreSQL, sobre las dos tablas de journal (usable con pool o tx).
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// tableFor mapea el kind a su tabla. Kind inválido es un error de programación.
func tableFor(kind entity.EntryKind) (string, error) {
	switch kind {
	case entity.EntryAdd:
		return "add_history", nil
	case entity.EntrySell:
		return "sell_history", nil
	default:
		return "", fmt.Errorf("journal desconocido %q: %w", kind, domain.ErrInvalidInput)
	}
}

// Insert persiste la entrada y rellena e.ID.
func (r *LedgerEntryRepo) Insert(ctx context.Context, kind entity.EntryKind, e *entity.LedgerEntry) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (product_id, quantity, unit_price, total_amount, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, table)
	if err := r.q.QueryRow(ctx, query, e.ProductID, e.Quantity, e.UnitPrice, e.TotalAmount, e.Date).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// GetByIDForUpdate obtiene la entrada con lock de fila. nil si no existe
// (incluido el caso de un borrado concurrente ya confirmado).
func (r *LedgerEntryRepo) GetByIDForUpdate(ctx context.Context, kind entity.EntryKind, id int64) (*entity.LedgerEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, product_id, quantity, unit_price, total_amount, date
		FROM %s WHERE id = $1 FOR UPDATE`, table)
	var e entity.LedgerEntry
	err = r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.ProductID, &e.Quantity, &e.UnitPrice, &e.TotalAmount, &e.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s entry: %w", table, err)
	}
	return &e, nil
}

// Delete elimina la entrada; deleted=false si la fila ya no existía.
func (r *LedgerEntryRepo) Delete(ctx context.Context, kind entity.EntryKind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	cmd, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return false, fmt.Errorf("delete %s entry: %w", table, err)
	}
	return cmd.RowsAffected() > 0, nil
}
