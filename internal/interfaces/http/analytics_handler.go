package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
)

// AnalyticsHandler expone las lecturas del ledger (protegido, solo lectura).
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// rangeParams lee los query params opcionales de rango. Devuelve nil para
// los ausentes; la validación ambos-o-ninguno vive en el usecase.
func rangeParams(c *fiber.Ctx) (start, end *string) {
	if s := c.Query("start_date"); s != "" {
		start = &s
	}
	if e := c.Query("end_date"); e != "" {
		end = &e
	}
	return start, end
}

// Summary godoc
// @Summary      Listado de productos con acumulados
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	products, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, *dto.ToProductDTO(p))
	}
	return c.JSON(dto.SummaryResponse{Products: out})
}

// EnhancedSummary godoc
// @Summary      Listado con promedios y profit/loss por producto
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EnhancedSummaryResponse
// @Router       /api/summary/enhanced [get]
func (h *AnalyticsHandler) EnhancedSummary(c *fiber.Ctx) error {
	products, err := h.uc.EnhancedSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.EnhancedSummaryResponse{Products: products})
}

// RangeSummary godoc
// @Summary      Totales del ledger acotados a un rango de fechas
// @Description  La lista de productos es el roster completo; solo los totales respetan el rango
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.RangeSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/range [get]
func (h *AnalyticsHandler) RangeSummary(c *fiber.Ctx) error {
	out, err := h.uc.RangeSummary(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailyHistory godoc
// @Summary      Totales agrupados por día calendario
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.DailyHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/history/daily [get]
func (h *AnalyticsHandler) DailyHistory(c *fiber.Ctx) error {
	start, end := rangeParams(c)
	history, err := h.uc.DailyHistory(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DailyHistoryResponse{History: history})
}

// TransactionHistory godoc
// @Summary      Transacciones individuales, más recientes primero
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.TransactionHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/history/transactions [get]
func (h *AnalyticsHandler) TransactionHistory(c *fiber.Ctx) error {
	start, end := rangeParams(c)
	transactions, err := h.uc.TransactionHistory(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.TransactionHistoryResponse{Transactions: transactions})
}

// ProductNames godoc
// @Summary      Nombres de productos para selects del cliente
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/products [get]
func (h *AnalyticsHandler) ProductNames(c *fiber.Ctx) error {
	names, err := h.uc.ProductNames(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": names})
}
