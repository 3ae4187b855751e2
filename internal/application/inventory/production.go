package inventory

import (
	"context"
	"time"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// PrefixProduccion clave de formulario para fijar producción pendiente.
const PrefixProduccion = "produccion"

// DefaultMinimumDelta incremento por defecto de la operación de subir mínimos.
const DefaultMinimumDelta = 2

// ProductionUseCase operaciones de administración sobre el libro de stock:
// fijar producción pendiente (valor absoluto, no delta) y subir mínimos en bloque.
type ProductionUseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockItemRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(txRunner TxRunner, stockRepo repository.StockItemRepository) *ProductionUseCase {
	return &ProductionUseCase{txRunner: txRunner, stockRepo: stockRepo}
}

// SetInProduction fija la cantidad en producción de un renglón (valor absoluto).
func (uc *ProductionUseCase) SetInProduction(ctx context.Context, itemID string, cantidad int) error {
	if cantidad < 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		_ repository.MovementRepository,
	) error {
		item, err := stockRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		item.EnProduccion = cantidad
		item.UpdatedAt = time.Now()
		return stockRepo.Update(item)
	})
}

// SetInProductionBatch aplica un formulario produccion_<id> línea por línea.
// A diferencia de salidas/envíos, cero es válido (limpia la producción pendiente).
func (uc *ProductionUseCase) SetInProductionBatch(ctx context.Context, form map[string]string) dto.BatchResultDTO {
	lines, errs := ParseBatch(PrefixProduccion, form)
	result := dto.BatchResultDTO{Errores: errs}
	for _, line := range lines {
		if err := uc.SetInProduction(ctx, line.ItemID, line.Cantidad); err != nil {
			result.Errores = append(result.Errores, dto.BatchLineError{
				Key:     line.Key,
				ItemID:  line.ItemID,
				Message: lineErrorMessage(err),
			})
			continue
		}
		result.Aplicadas++
	}
	return result
}

// RaiseAllMinimums sube los mínimos de todos los renglones en delta unidades
// (NULL cuenta como 0). Un solo statement, un solo commit. La operación es
// aditiva: aplicarla dos veces con 2 equivale a una vez con 4.
func (uc *ProductionUseCase) RaiseAllMinimums(ctx context.Context, delta int) error {
	if delta <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.RaiseAllMinimums(delta)
}
