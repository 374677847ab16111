package entity

import "github.com/shopspring/decimal"

// EntryKind discrimina los dos journals del ledger.
type EntryKind string

const (
	EntryAdd  EntryKind = "add"  // entrada de stock (add_history)
	EntrySell EntryKind = "sell" // venta (sell_history)
)

// Valid reporta si el kind es uno de los dos journals conocidos.
func (k EntryKind) Valid() bool {
	return k == EntryAdd || k == EntrySell
}

// LedgerEntry es una transacción individual del journal (add o sell).
// Es la fuente de verdad de la que se derivan los acumulados de Product.
// No se actualiza en sitio: una corrección es borrar + re-insertar.
type LedgerEntry struct {
	ID          int64
	ProductID   int64
	Quantity    int64           // > 0
	UnitPrice   decimal.Decimal // >= 0
	TotalAmount decimal.Decimal // Quantity × UnitPrice, redondeado a 2 decimales
	Date        string          // fecha calendario YYYY-MM-DD, comparable como string
}
