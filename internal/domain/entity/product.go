package entity

import "github.com/shopspring/decimal"

// Product agrupa los acumulados del ledger por producto (una fila por nombre).
// Los acumulados se derivan de add_history y sell_history; AvailableStock debe
// cumplir siempre AvailableStock == TotalAddedQty - TotalSoldQty después de
// cada mutación confirmada. Solo el motor del ledger los modifica.
type Product struct {
	ID               int64
	Name             string // clave natural, único
	TotalAddedQty    int64
	TotalAddedAmount decimal.Decimal
	TotalSoldQty     int64
	TotalSoldAmount  decimal.Decimal
	AvailableStock   int64 // puede quedar negativo tras borrar un add (no se re-valida)
}

// RecalcAvailable recalcula el stock disponible a partir de los acumulados.
func (p *Product) RecalcAvailable() {
	p.AvailableStock = p.TotalAddedQty - p.TotalSoldQty
}
