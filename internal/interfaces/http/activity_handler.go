package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ActivityHandler expone la lectura del registro de auditoría.
type ActivityHandler struct {
	repo repository.ActivityLogRepository
}

// NewActivityHandler construye el handler.
func NewActivityHandler(repo repository.ActivityLogRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// List godoc
// @Summary      Registro de auditoría, más reciente primero
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de entradas (default 100)"
// @Success      200  {object}  dto.ActivityLogResponse
// @Router       /api/activity-logs [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "limit inválido"))
		}
		limit = n
	}
	rows, err := h.repo.ListRecent(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	logs := make([]dto.ActivityLogDTO, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, dto.ToActivityLogDTO(r))
	}
	return c.JSON(dto.ActivityLogResponse{Logs: logs})
}
