package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/application/inventory"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
)

// StockHandler maneja las consultas del libro de stock y la nota del taller.
type StockHandler struct {
	queries *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(queries *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{queries: queries}
}

// List lista el stock completo con su banda de color.
// GET /api/stock
func (h *StockHandler) List(c *fiber.Ctx) error {
	rows, err := h.queries.ListStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// ListBelowMinimum lista las referencias con stock por debajo del mínimo.
// GET /api/stock/bajo-minimos
func (h *StockHandler) ListBelowMinimum(c *fiber.Ctx) error {
	rows, err := h.queries.ListBelowMinimum(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// ListInProduction lista las referencias con unidades encargadas a la maquila.
// GET /api/stock/pendientes
func (h *StockHandler) ListInProduction(c *fiber.Ctx) error {
	rows, err := h.queries.ListInProduction(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// RecentMovements lista los últimos movimientos de un tipo.
// GET /api/movimientos?tipo=ENVIO&limit=20
func (h *StockHandler) RecentMovements(c *fiber.Ctx) error {
	tipo := c.Query("tipo", entity.MovementEnvio)
	limit := c.QueryInt("limit", 20)
	rows, err := h.queries.RecentMovements(c.Context(), tipo, limit)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser ENVIO o SALIDA"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// GetNote devuelve la nota del taller.
// GET /api/nota
func (h *StockHandler) GetNote(c *fiber.Ctx) error {
	note, err := h.queries.GetNote(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(note)
}

// SaveNote reemplaza la nota del taller.
// PUT /api/nota (acepta JSON o formulario)
func (h *StockHandler) SaveNote(c *fiber.Ctx) error {
	var in dto.NoteDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.queries.SaveNote(c.Context(), in.Texto, GetUsuario(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
