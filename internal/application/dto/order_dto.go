package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// CreateOrderRequest venta a cliente con sus datos de contacto.
// No toca los acumulados del ledger.
type CreateOrderRequest struct {
	ProductName     string          `json:"product_name"`
	QuantitySold    int64           `json:"quantity_sold"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	CustomerPhone   string          `json:"customer_phone"`
}

// OrderDTO orden de venta persistida.
type OrderDTO struct {
	ID              string          `json:"id"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	QuantitySold    int64           `json:"quantity_sold"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	SaleDate        time.Time       `json:"sale_date"`
	CreatedBy       string          `json:"created_by"`
}

// ToOrderDTO mapea la entidad al DTO.
func ToOrderDTO(o *entity.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID,
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		QuantitySold:    o.QuantitySold,
		TotalAmount:     o.TotalAmount,
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		CustomerPhone:   o.CustomerPhone,
		SaleDate:        o.SaleDate,
		CreatedBy:       o.CreatedBy,
	}
}

// CreateOrderResponse resultado de la creación de una orden.
type CreateOrderResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Order   *OrderDTO `json:"order,omitempty"`
}

// OrdersResponse listado de órdenes.
type OrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}
