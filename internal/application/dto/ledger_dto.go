package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// AddStockRequest entrada de stock: crea el producto si no existe.
type AddStockRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

// SellStockRequest venta contra el stock disponible (todo o nada).
type SellStockRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

// ProductDTO acumulados actuales de un producto.
type ProductDTO struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	TotalAddedQty    int64           `json:"total_added_qty"`
	TotalAddedAmount decimal.Decimal `json:"total_added_amount"`
	TotalSoldQty     int64           `json:"total_sold_qty"`
	TotalSoldAmount  decimal.Decimal `json:"total_sold_amount"`
	AvailableStock   int64           `json:"available_stock"`
}

// ToProductDTO mapea la entidad al DTO.
func ToProductDTO(p *entity.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:               p.ID,
		Name:             p.Name,
		TotalAddedQty:    p.TotalAddedQty,
		TotalAddedAmount: p.TotalAddedAmount,
		TotalSoldQty:     p.TotalSoldQty,
		TotalSoldAmount:  p.TotalSoldAmount,
		AvailableStock:   p.AvailableStock,
	}
}

// ProductResponse resultado de una mutación del ledger: success + mensaje
// legible + el producto con sus acumulados ya actualizados.
type ProductResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Product *ProductDTO `json:"product,omitempty"`
}
