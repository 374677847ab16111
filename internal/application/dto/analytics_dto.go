package dto

import "github.com/shopspring/decimal"

// ProductAnalyticsDTO acumulados más derivados financieros.
// Los promedios son nil (ausentes en JSON) cuando el denominador es cero,
// nunca cero ni error.
type ProductAnalyticsDTO struct {
	ProductDTO
	AvgPurchasePrice *decimal.Decimal `json:"avg_purchase_price,omitempty"`
	AvgSellingPrice  *decimal.Decimal `json:"avg_selling_price,omitempty"`
	ProfitLoss       decimal.Decimal  `json:"profit_loss"`
}

// SummaryResponse listado de productos con acumulados.
type SummaryResponse struct {
	Products []ProductDTO `json:"products"`
}

// EnhancedSummaryResponse listado con derivados financieros.
type EnhancedSummaryResponse struct {
	Products []ProductAnalyticsDTO `json:"products"`
}

// RangeSummaryResponse totales acotados al rango de fechas. La lista de
// productos es el roster completo actual, NO se filtra al rango: solo los
// totales son range-scoped (asimetría deliberada del reporte).
type RangeSummaryResponse struct {
	Products                []ProductDTO    `json:"products"`
	TotalAddedQtyInRange    int64           `json:"total_added_qty_in_range"`
	TotalAddedAmountInRange decimal.Decimal `json:"total_added_amount_in_range"`
	TotalSoldQtyInRange     int64           `json:"total_sold_qty_in_range"`
	TotalSoldAmountInRange  decimal.Decimal `json:"total_sold_amount_in_range"`
}

// DailyBucketDTO totales de un día calendario. Un día con solo ventas
// aparece igualmente, con el lado de entradas en cero.
type DailyBucketDTO struct {
	Date             string          `json:"date"`
	TotalAddedQty    int64           `json:"total_added_qty"`
	TotalAddedAmount decimal.Decimal `json:"total_added_amount"`
	TotalSoldQty     int64           `json:"total_sold_qty"`
	TotalSoldAmount  decimal.Decimal `json:"total_sold_amount"`
}

// DailyHistoryResponse buckets diarios en orden ascendente por fecha.
type DailyHistoryResponse struct {
	History []DailyBucketDTO `json:"history"`
}

// TransactionDTO entrada individual del journal unida al nombre del producto.
type TransactionDTO struct {
	ID              int64           `json:"id"`
	Date            string          `json:"date"`
	ProductName     string          `json:"product_name"`
	TransactionType string          `json:"transaction_type"` // "add" | "sell"
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// TransactionHistoryResponse transacciones en orden descendente por fecha.
type TransactionHistoryResponse struct {
	Transactions []TransactionDTO `json:"transactions"`
}
