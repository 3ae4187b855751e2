package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/application/inventory"
	"github.com/dcastano/inventario-taller/internal/domain"
)

// reorderExporter es el contrato mínimo que necesita el handler para exportar
// el reporte de faltantes. Lo implementa excel.ReorderExporter; la interfaz
// evita que la capa HTTP importe infraestructura.
type reorderExporter interface {
	Export(rows []dto.ReorderRowDTO) ([]byte, error)
}

// AdminHandler maneja las operaciones exclusivas del administrador:
// producción pendiente, mínimos, conciliación y reporte de faltantes.
type AdminHandler struct {
	production *inventory.ProductionUseCase
	reconcile  *inventory.ReconcileUseCase
	queries    *inventory.StockQueryUseCase
	exporter   reorderExporter
}

// NewAdminHandler construye el handler.
func NewAdminHandler(
	production *inventory.ProductionUseCase,
	reconcile *inventory.ReconcileUseCase,
	queries *inventory.StockQueryUseCase,
	exporter reorderExporter,
) *AdminHandler {
	return &AdminHandler{production: production, reconcile: reconcile, queries: queries, exporter: exporter}
}

// SetProduction fija las cantidades en producción (claves produccion_<id>).
// POST /api/produccion
func (h *AdminHandler) SetProduction(c *fiber.Ctx) error {
	result := h.production.SetInProductionBatch(c.Context(), formToMap(c))
	return c.JSON(result)
}

// RaiseMinimums sube todos los mínimos en el delta dado (2 por defecto).
// POST /api/minimos/aumentar
func (h *AdminHandler) RaiseMinimums(c *fiber.Ctx) error {
	delta := c.QueryInt("delta", inventory.DefaultMinimumDelta)
	if err := h.production.RaiseAllMinimums(c.Context(), delta); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta debe ser positivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sync corre la conciliación de sugerencias de reposición y bloquea hasta
// terminar.
// POST /api/sync
func (h *AdminHandler) Sync(c *fiber.Ctx) error {
	n, err := h.reconcile.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"sugerencias": n})
}

// ReorderReport devuelve el reporte de faltantes.
// GET /api/faltantes
func (h *AdminHandler) ReorderReport(c *fiber.Ctx) error {
	rows, err := h.queries.ReorderReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// ExportReorderReport descarga el reporte de faltantes como XLSX.
// GET /api/faltantes/xlsx
func (h *AdminHandler) ExportReorderReport(c *fiber.Ctx) error {
	rows, err := h.queries.ReorderReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.exporter.Export(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="faltantes.xlsx"`)
	return c.Send(data)
}
