package entity

import "time"

// Tipos de movimiento del libro mayor de inventario.
const (
	// MovementEnvio es una entrada desde la maquila: suma stock y descuenta
	// la cantidad en producción.
	MovementEnvio = "ENVIO"
	// MovementSalida es una salida del taller hacia el cliente: resta stock.
	MovementSalida = "SALIDA"
)

// Movement es una fila del libro de movimientos. Solo se inserta, nunca se
// edita ni se borra.
type Movement struct {
	ID        string
	ItemID    string
	Producto  string
	Talla     string
	Tipo      string
	Cantidad  int // siempre positiva; el signo lo da el tipo
	Fecha     time.Time
	CreadoPor string
}
