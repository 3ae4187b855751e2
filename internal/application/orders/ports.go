package orders

import (
	"context"

	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// TxRunner ejecuta la creación de órdenes y el registro de abonos dentro de
// una transacción, con repositorios atados a esa tx.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		orderRepo repository.PurchaseOrderRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// OrderPDFGenerator genera el resumen imprimible de una orden de compra.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) ([]byte, error)
}

// DocumentStore almacén de documentos generados: archivos con nombre,
// escritos una sola vez y recuperables por nombre.
type DocumentStore interface {
	Save(name string, data []byte) error
	Get(name string) ([]byte, error)
}
