package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/orders"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// OrderHandler maneja órdenes de venta y sus exports.
type OrderHandler struct {
	uc         *orders.UseCase
	xlsxExport orders.Exporter
	pdfExport  orders.Exporter
}

// NewOrderHandler construye el handler con ambos exportadores.
func NewOrderHandler(uc *orders.UseCase, xlsxExport, pdfExport orders.Exporter) *OrderHandler {
	return &OrderHandler{uc: uc, xlsxExport: xlsxExport, pdfExport: pdfExport}
}

// Create godoc
// @Summary      Crear orden de venta
// @Description  Registra la venta a cliente; no modifica los acumulados del ledger
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	order, err := h.uc.Create(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	out := dto.ToOrderDTO(order)
	customer := order.CustomerName
	if customer == "" {
		customer = "N/A"
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateOrderResponse{
		Success: true,
		Message: fmt.Sprintf("Order created: %d x %s for %s", order.QuantitySold, order.ProductName, customer),
		Order:   &out,
	})
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Success      200  {object}  dto.OrdersResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	f, err := orderFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "product_id inválido"))
	}
	list, err := h.uc.List(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToOrderDTO(o))
	}
	return c.JSON(dto.OrdersResponse{Orders: out})
}

// ExportXLSX godoc
// @Summary      Exportar órdenes a Excel
// @Tags         orders
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/orders/export [get]
func (h *OrderHandler) ExportXLSX(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.Context(), h.xlsxExport)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar órdenes a PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/orders/export/pdf [get]
func (h *OrderHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.Context(), h.pdfExport)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("orders_%s.pdf", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

func orderFilter(c *fiber.Ctx) (repository.OrderFilter, error) {
	var f repository.OrderFilter
	if s := c.Query("start_date"); s != "" {
		f.StartDate = &s
	}
	if e := c.Query("end_date"); e != "" {
		f.EndDate = &e
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.ProductID = &id
	}
	return f, nil
}
