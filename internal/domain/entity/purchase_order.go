package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder es una orden de compra hacia una maquila. El total se fija
// al crearla; pagado y saldo cambian con cada abono.
//
// Invariante: Saldo = max(0, Total - Pagado). Pagado sí acumula el exceso
// cuando se abona más del total.
type PurchaseOrder struct {
	ID        string
	Maquila   string
	Fecha     time.Time
	Total     decimal.Decimal
	Pagado    decimal.Decimal
	Saldo     decimal.Decimal
	Documento string // nombre del PDF generado, vacío si la generación falló
	CreadoPor string
}

// PurchaseOrderLine es una línea de la orden: una referencia encargada con
// su cantidad y el precio unitario vigente al momento de crearla.
type PurchaseOrderLine struct {
	ID             string
	OrderID        string
	ItemID         string
	Producto       string
	Talla          string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// Payment es un abono registrado contra una orden. Solo se inserta.
type Payment struct {
	ID      string
	OrderID string
	Monto   decimal.Decimal
	Fecha   time.Time
}
