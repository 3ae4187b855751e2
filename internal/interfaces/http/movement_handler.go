package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/inventario-taller/internal/application/inventory"
)

// MovementHandler maneja los formularios por lotes de salidas y envíos.
// Cada renglón del lote se aplica por separado; los fallos de una línea no
// detienen el resto y se devuelven en el resultado.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterOutbound registra salidas del taller (claves salida_<id>).
// POST /api/salidas
func (h *MovementHandler) RegisterOutbound(c *fiber.Ctx) error {
	result := h.uc.RegisterOutboundBatch(c.Context(), formToMap(c), GetUserID(c))
	return c.JSON(result)
}

// RegisterInbound registra envíos desde la maquila (claves envio_<id>).
// POST /api/envios
func (h *MovementHandler) RegisterInbound(c *fiber.Ctx) error {
	result := h.uc.RegisterInboundBatch(c.Context(), formToMap(c), GetUserID(c))
	return c.JSON(result)
}
