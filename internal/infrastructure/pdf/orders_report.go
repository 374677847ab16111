// Package pdf genera el reporte PDF de órdenes de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | Cliente | Total | Fecha | Usuario  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/application/orders"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

var _ orders.Exporter = (*OrdersReport)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// OrdersReport genera el reporte de órdenes usando Maroto v2.
type OrdersReport struct{}

// NewOrdersReport construye el generador.
func NewOrdersReport() *OrdersReport { return &OrdersReport{} }

// Export genera el PDF y devuelve sus bytes.
func (g *OrdersReport) Export(list []*entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Órdenes", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(list)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(list) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(list))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte (izq) y fecha de generación + conteo (der).
func headerRow(count int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE ÓRDENES DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d órdenes", count), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de órdenes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Cliente", 3, align.Left),
		h("Total", 2, align.Right),
		h("Fecha", 2, align.Center),
		h("Usuario", 1, align.Left),
	)
}

// tableRows: una fila por orden.
func tableRows(list []*entity.Order) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, o := range list {
		customer := o.CustomerName
		if customer == "" {
			customer = "—"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(o.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", o.QuantitySold), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(customer, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New("$"+o.TotalAmount.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(o.SaleDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(o.CreatedBy, props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

// totalRow: suma de los montos de todas las órdenes del reporte.
func totalRow(list []*entity.Order) core.Row {
	total := decimal.Zero
	for _, o := range list {
		total = total.Add(o.TotalAmount)
	}
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL GENERAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(4).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}
