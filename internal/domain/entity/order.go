package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es un registro de venta a cliente (revisión nueva del sistema),
// separado del journal sell_history: captura datos del cliente y NO alimenta
// los acumulados de Product. La separación es deliberada (orders = registro
// comercial, sell_history = ledger interno de precios).
type Order struct {
	ID              string // UUID
	ProductID       int64
	ProductName     string
	QuantitySold    int64
	TotalAmount     decimal.Decimal
	CustomerName    string // opcional
	CustomerAddress string // opcional
	CustomerPhone   string // opcional
	SaleDate        time.Time
	CreatedBy       string // username del token, no FK
}
