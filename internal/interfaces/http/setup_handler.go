package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/inventario-taller/internal/application/auth"
	"github.com/dcastano/inventario-taller/internal/application/dto"
)

// migrationsRunner es el contrato mínimo para aplicar migraciones; lo cumple
// postgres.RunMigrations parcializado en el main.
type migrationsRunner func() error

// SetupHandler maneja la puesta en marcha: esquema y usuarios iniciales.
type SetupHandler struct {
	runMigrations migrationsRunner
	authUC        *auth.AuthUseCase
	seedPassword  string
}

// NewSetupHandler construye el handler.
func NewSetupHandler(runMigrations migrationsRunner, authUC *auth.AuthUseCase, seedPassword string) *SetupHandler {
	return &SetupHandler{runMigrations: runMigrations, authUC: authUC, seedPassword: seedPassword}
}

// InitDB aplica las migraciones SQL. Idempotente: si el esquema ya está al
// día responde igual que si lo acabara de crear.
// POST /api/setup/init-db
func (h *SetupHandler) InitDB(c *fiber.Ctx) error {
	if err := h.runMigrations(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MIGRATION_FAILED", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "esquema al día"})
}

// SeedUsers crea los usuarios taller/maquila/admin con la contraseña inicial.
// No-op si ya existe algún usuario.
// POST /api/setup/seed-users
func (h *SetupHandler) SeedUsers(c *fiber.Ctx) error {
	created, err := h.authUC.SeedDefaultUsers(h.seedPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SEED_FAILED", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"creados": created})
}
