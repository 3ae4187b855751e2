package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// Prefijos de clave de formulario para lotes de movimientos.
const (
	PrefixSalida = "salida"
	PrefixEnvio  = "envio"
)

// MovementUseCase registra salidas del taller y envíos de la maquila.
// Cada línea corre en su propia transacción con bloqueo de fila
// (SELECT FOR UPDATE); una línea rechazada no afecta a las demás del lote.
//
// Política de stock negativo: las salidas se aceptan sin tope y el stock puede
// quedar negativo (venta sobre pedido). Es la política de la operación del
// taller; la banda azul del clasificador la hace visible en la vista.
type MovementUseCase struct {
	txRunner TxRunner
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner}
}

// RegisterOutbound descuenta stock y apunta la salida en el registro.
// cantidad debe ser > 0; el stock resultante puede ser negativo.
func (uc *MovementUseCase) RegisterOutbound(ctx context.Context, itemID string, cantidad int, userID string) error {
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
	) error {
		item, err := stockRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		item.Stock -= cantidad
		item.UpdatedAt = time.Now()
		if err := stockRepo.Update(item); err != nil {
			return err
		}
		return movRepo.Create(newMovement(item, entity.MovementSalida, cantidad, userID))
	})
}

// RegisterInbound suma stock desde la maquila y descuenta lo en producción.
// cantidad debe ser > 0 y no puede superar lo pendiente en producción.
func (uc *MovementUseCase) RegisterInbound(ctx context.Context, itemID string, cantidad int, userID string) error {
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
	) error {
		item, err := stockRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if cantidad > item.EnProduccion {
			return domain.ErrExceedsProduction
		}
		item.Stock += cantidad
		item.EnProduccion -= cantidad
		item.UpdatedAt = time.Now()
		if err := stockRepo.Update(item); err != nil {
			return err
		}
		return movRepo.Create(newMovement(item, entity.MovementEnvio, cantidad, userID))
	})
}

// RegisterOutboundBatch aplica un formulario de salidas (claves salida_<id>).
// Cada línea es independiente: las válidas quedan aplicadas aunque otras fallen.
func (uc *MovementUseCase) RegisterOutboundBatch(ctx context.Context, form map[string]string, userID string) dto.BatchResultDTO {
	return uc.applyBatch(ctx, PrefixSalida, form, userID, uc.RegisterOutbound)
}

// RegisterInboundBatch aplica un formulario de envíos (claves envio_<id>).
func (uc *MovementUseCase) RegisterInboundBatch(ctx context.Context, form map[string]string, userID string) dto.BatchResultDTO {
	return uc.applyBatch(ctx, PrefixEnvio, form, userID, uc.RegisterInbound)
}

func (uc *MovementUseCase) applyBatch(
	ctx context.Context,
	prefix string,
	form map[string]string,
	userID string,
	apply func(ctx context.Context, itemID string, cantidad int, userID string) error,
) dto.BatchResultDTO {
	lines, errs := ParseBatch(prefix, form)
	result := dto.BatchResultDTO{Errores: errs}
	for _, line := range lines {
		if err := apply(ctx, line.ItemID, line.Cantidad, userID); err != nil {
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

// lineErrorMessage traduce errores de dominio a mensajes visibles por línea.
func lineErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "renglón desconocido"
	case errors.Is(err, domain.ErrInvalidInput):
		return "cantidad inválida"
	case errors.Is(err, domain.ErrExceedsProduction):
		return "cantidad supera lo en producción"
	default:
		return "no se pudo registrar el movimiento"
	}
}

func newMovement(item *entity.StockItem, tipo string, cantidad int, userID string) *entity.Movement {
	return &entity.Movement{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		Producto:  item.Producto,
		Talla:     item.Talla,
		Tipo:      tipo,
		Cantidad:  cantidad,
		Fecha:     time.Now(),
		CreadoPor: userID,
	}
}
