package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// PaymentUseCase registra abonos contra una orden de compra.
// El saldo nunca crece y queda en cero una vez pagado >= total.
type PaymentUseCase struct {
	txRunner TxRunner
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(txRunner TxRunner) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner}
}

// RecordPayment suma el abono al pagado de la orden, recalcula
// saldo = max(0, total - pagado) y apunta el abono. Todo en una transacción
// con la cabecera bloqueada.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, orderID string, monto decimal.Decimal) (*dto.OrderResponse, error) {
	if orderID == "" || !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var order *entity.PurchaseOrder
	err := uc.txRunner.RunOrders(ctx, func(
		_ repository.StockItemRepository,
		orderRepo repository.PurchaseOrderRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		var err error
		order, err = orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		order.Pagado = order.Pagado.Add(monto)
		order.Saldo = order.Total.Sub(order.Pagado)
		if order.Saldo.LessThan(decimal.Zero) {
			order.Saldo = decimal.Zero
		}
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		return paymentRepo.Create(&entity.Payment{
			ID:      uuid.New().String(),
			OrderID: orderID,
			Monto:   monto,
			Fecha:   time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, nil), nil
}
