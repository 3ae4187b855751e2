package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/inventario-taller/internal/domain/entity"
	domaininv "github.com/dcastano/inventario-taller/internal/domain/inventory"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// ReconcileUseCase regenera el reporte de faltantes: borra todas las
// sugerencias y crea una por renglón del libro a partir del stock actual y la
// cantidad objetivo (lo pendiente en producción). Corre en una sola
// transacción, disparada a demanda por un admin o por el binario sync.
type ReconcileUseCase struct {
	txRunner ReconcileTxRunner
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner ReconcileTxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// Run ejecuta la pasada completa y devuelve cuántas sugerencias generó.
func (uc *ReconcileUseCase) Run(ctx context.Context) (int, error) {
	var generated int
	err := uc.txRunner.RunReconcile(ctx, func(
		stockRepo repository.StockItemRepository,
		sugRepo repository.ReorderSuggestionRepository,
	) error {
		items, err := stockRepo.List()
		if err != nil {
			return err
		}
		if err := sugRepo.DeleteAll(); err != nil {
			return err
		}
		now := time.Now()
		for _, item := range items {
			rq := domaininv.ComputeReorderQuantity(item.Stock, item.EnProduccion)
			if err := sugRepo.Create(&entity.ReorderSuggestion{
				ID:         uuid.New().String(),
				ItemID:     item.ID,
				Producto:   item.Producto,
				Talla:      item.Talla,
				Urgente:    rq.Urgente,
				Faltantes:  rq.Faltantes,
				GeneradoEn: now,
			}); err != nil {
				return err
			}
			generated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return generated, nil
}
