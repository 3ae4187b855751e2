package inventory

import (
	"context"

	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada línea de un lote corre en su propia
// transacción: una línea rechazada no revierte las demás.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// ReconcileTxRunner ejecuta la pasada de conciliación (borrar y regenerar el
// reporte de faltantes) en una sola transacción.
type ReconcileTxRunner interface {
	RunReconcile(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		sugRepo repository.ReorderSuggestionRepository,
	) error) error
}
