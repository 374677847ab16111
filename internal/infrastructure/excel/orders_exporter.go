package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-ledger/internal/application/orders"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

var _ orders.Exporter = (*OrdersExporter)(nil)

const sheetName = "Orders"

var headers = []string{
	"Order ID", "Product", "Quantity", "Customer Name", "Phone",
	"Address", "Total Amount", "Sale Date", "Created By",
}

var columnWidths = []float64{38, 20, 10, 20, 15, 30, 15, 20, 15}

// OrdersExporter serializa órdenes a XLSX con excelize.
type OrdersExporter struct{}

// NewOrdersExporter construye el exporter.
func NewOrdersExporter() *OrdersExporter { return &OrdersExporter{} }

// Export genera el libro con una fila por orden y devuelve sus bytes.
func (e *OrdersExporter) Export(list []*entity.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo de encabezado: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, columnWidths[i])
	}
	firstCol, _ := excelize.CoordinatesToCellName(1, 1)
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, firstCol, lastCol, headerStyle)

	for i, o := range list {
		row := i + 2
		values := []any{
			o.ID,
			o.ProductName,
			o.QuantitySold,
			orNA(o.CustomerName),
			orNA(o.CustomerPhone),
			orNA(o.CustomerAddress),
			"$" + o.TotalAmount.StringFixed(2),
			o.SaleDate.Format("2006-01-02 15:04:05"),
			o.CreatedBy,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
