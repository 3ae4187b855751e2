package http

import "github.com/gofiber/fiber/v2"

// formToMap convierte el cuerpo de formulario en un map plano. Las vistas de
// lote mandan una clave por renglón (salida_<id>, envio_<id>, produccion_<id>).
func formToMap(c *fiber.Ctx) map[string]string {
	form := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		form[string(key)] = string(value)
	})
	return form
}
