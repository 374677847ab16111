package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre los journals.
// Corre sobre el pool: no participa de ninguna transacción de mutación.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// RangeTotals suma quantity y total_amount del journal con date en
// [start, end]. COALESCE devuelve cero en un rango sin movimientos.
func (r *AnalyticsRepo) RangeTotals(ctx context.Context, kind entity.EntryKind, start, end string) (int64, decimal.Decimal, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, decimal.Zero, err
	}
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(total_amount), 0)
		FROM %s
		WHERE date >= $1 AND date <= $2`, table)
	var (
		qty    int64
		amount decimal.Decimal
	)
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&qty, &amount); err != nil {
		return 0, decimal.Zero, fmt.Errorf("range totals %s: %w", table, err)
	}
	return qty, amount, nil
}

// ListTransactions devuelve las entradas del journal unidas al nombre del
// producto (join en lectura), opcionalmente acotadas al rango.
func (r *AnalyticsRepo) ListTransactions(ctx context.Context, kind entity.EntryKind, start, end *string) ([]repository.TransactionRow, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT h.id, h.date, p.name, h.quantity, h.unit_price, h.total_amount
		FROM %s h
		JOIN products p ON p.id = h.product_id`, table)
	args := []any{}
	if start != nil && end != nil {
		query += ` WHERE h.date >= $1 AND h.date <= $2`
		args = append(args, *start, *end)
	}
	query += ` ORDER BY h.date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s transactions: %w", table, err)
	}
	defer rows.Close()

	var out []repository.TransactionRow
	for rows.Next() {
		row := repository.TransactionRow{Type: string(kind)}
		if err := rows.Scan(&row.ID, &row.Date, &row.ProductName, &row.Quantity, &row.UnitPrice, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan %s transaction: %w", table, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
