package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de una orden de compra nueva.
type OrderLineRequest struct {
	ItemID   string `json:"item_id"`
	Cantidad int    `json:"cantidad"`
}

// CreateOrderRequest body para POST /api/ordenes.
type CreateOrderRequest struct {
	Maquila string             `json:"maquila"`
	Lines   []OrderLineRequest `json:"lineas"`
}

// OrderLineResponse línea persistida con subtotal calculado.
type OrderLineResponse struct {
	Producto       string          `json:"producto"`
	Talla          string          `json:"talla"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// OrderResponse cabecera de orden con saldo vigente.
type OrderResponse struct {
	ID        string              `json:"id"`
	Maquila   string              `json:"maquila"`
	Fecha     time.Time           `json:"fecha"`
	Total     decimal.Decimal     `json:"total"`
	Pagado    decimal.Decimal     `json:"pagado"`
	Saldo     decimal.Decimal     `json:"saldo"`
	Documento string              `json:"documento,omitempty"`
	Lineas    []OrderLineResponse `json:"lineas,omitempty"`
}

// PaymentRequest body para POST /api/ordenes/:id/pagos.
type PaymentRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

// PaymentResponse abono registrado.
type PaymentResponse struct {
	ID    string          `json:"id"`
	Monto decimal.Decimal `json:"monto"`
	Fecha time.Time       `json:"fecha"`
}
