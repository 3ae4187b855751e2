package repository

import (
	"github.com/dcastano/inventario-taller/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateLine(line *entity.PurchaseOrderLine) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la cabecera para registrar abonos sin carreras.
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	GetLines(orderID string) ([]*entity.PurchaseOrderLine, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	// SetDocumento registra el nombre del PDF generado (una sola vez).
	SetDocumento(orderID, documento string) error
}

// PaymentRepository define el puerto para abonos contra órdenes. Append-only.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByOrder(orderID string) ([]*entity.Payment, error)
}
