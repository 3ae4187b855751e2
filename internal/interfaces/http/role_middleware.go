package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/inventario-taller/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que verifica que el rol del token
// esté en la lista permitida. Debe usarse DESPUÉS de AuthMiddleware (necesita
// LocalRol).
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto (token sin pasar por auth).
//   - 403 Forbidden    → el rol no está autorizado para la ruta; el mensaje
//     nombra la sección para que la negativa sea visible, no silenciosa.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		if _, ok := allowed[rol]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + rol + "' no tiene acceso a esta sección",
			})
		}
		return c.Next()
	}
}
