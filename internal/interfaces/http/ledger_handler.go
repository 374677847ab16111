package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/ledger"
)

// LedgerHandler maneja las mutaciones del ledger (protegido).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// AddStock godoc
// @Summary      Registrar entrada de stock
// @Description  Crea el producto si no existe y actualiza acumulados en la misma transacción
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Movimiento de entrada"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger/add [post]
func (h *LedgerHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	product, err := h.uc.AddStock(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductResponse{
		Success: true,
		Message: fmt.Sprintf("Added %d units of %s", in.Quantity, product.Name),
		Product: dto.ToProductDTO(product),
	})
}

// SellStock godoc
// @Summary      Registrar venta de stock
// @Description  Todo o nada: rechaza la venta completa si no alcanza el disponible
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellStockRequest  true  "Movimiento de venta"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/sell [post]
func (h *LedgerHandler) SellStock(c *fiber.Ctx) error {
	var in dto.SellStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	product, err := h.uc.SellStock(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductResponse{
		Success: true,
		Message: fmt.Sprintf("Sold %d units of %s", in.Quantity, product.Name),
		Product: dto.ToProductDTO(product),
	})
}

// DeleteAddEntry godoc
// @Summary      Eliminar un registro de entrada
// @Description  Resta mecánicamente qty/monto de los acumulados (inversa exacta del add)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro en add_history"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/history/add/{id} [delete]
func (h *LedgerHandler) DeleteAddEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "id inválido"))
	}
	product, err := h.uc.DeleteAddEntry(c.Context(), id, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductResponse{
		Success: true,
		Message: fmt.Sprintf("Deleted add record %d", id),
		Product: dto.ToProductDTO(product),
	})
}

// DeleteSellEntry godoc
// @Summary      Eliminar un registro de venta
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro en sell_history"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/history/sell/{id} [delete]
func (h *LedgerHandler) DeleteSellEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "id inválido"))
	}
	product, err := h.uc.DeleteSellEntry(c.Context(), id, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductResponse{
		Success: true,
		Message: fmt.Sprintf("Deleted sell record %d", id),
		Product: dto.ToProductDTO(product),
	})
}
