package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// TransactionRow es una entrada del journal unida al nombre de su producto
// (join en lectura, nunca copia cacheada). Type es "add" o "sell".
type TransactionRow struct {
	ID          int64
	Date        string
	ProductName string
	Type        string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura sobre los journals.
// Seguras de ejecutar en concurrencia con cualquier mutación.
type AnalyticsRepository interface {
	// RangeTotals suma quantity y total_amount del journal kind con
	// date en [start, end] (inclusivo, comparación de strings).
	RangeTotals(ctx context.Context, kind entity.EntryKind, start, end string) (qty int64, amount decimal.Decimal, err error)
	// ListTransactions devuelve las entradas del journal kind unidas al nombre
	// del producto, opcionalmente filtradas por rango (ambos límites o ninguno).
	ListTransactions(ctx context.Context, kind entity.EntryKind, start, end *string) ([]TransactionRow, error)
}
