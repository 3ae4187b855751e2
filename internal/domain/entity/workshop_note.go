package entity

import "time"

// WorkshopNote es la nota libre del taller sobre el último pedido.
// Fila única: la última escritura gana.
type WorkshopNote struct {
	Texto          string
	ActualizadoEn  time.Time
	ActualizadoPor string
}
