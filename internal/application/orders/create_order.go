package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// CreateOrderUseCase crea una orden de compra a una maquila: suma la cantidad
// de cada línea a lo en producción del renglón, calcula subtotales al precio
// vigente y persiste cabecera y líneas en una transacción. El PDF de resumen
// se genera después del commit; si falla, la orden queda válida sin documento.
type CreateOrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.PurchaseOrderRepository
	pdfGen    OrderPDFGenerator
	docs      DocumentStore
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	pdfGen OrderPDFGenerator,
	docs DocumentStore,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner, orderRepo: orderRepo, pdfGen: pdfGen, docs: docs}
}

// CreateOrder valida y persiste la orden. Líneas con cantidad <= 0 se rechazan;
// al menos una línea válida es obligatoria.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Maquila == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.ItemID == "" || l.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:        uuid.New().String(),
		Maquila:   in.Maquila,
		Fecha:     now,
		CreadoPor: userID,
	}
	var lines []*entity.PurchaseOrderLine

	err := uc.txRunner.RunOrders(ctx, func(
		stockRepo repository.StockItemRepository,
		orderRepo repository.PurchaseOrderRepository,
		_ repository.PaymentRepository,
	) error {
		total := decimal.Zero
		var updated []*entity.StockItem
		lines = lines[:0]

		for _, l := range in.Lines {
			item, err := stockRepo.GetForUpdate(l.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			item.EnProduccion += l.Cantidad
			item.UpdatedAt = now
			updated = append(updated, item)

			subtotal := item.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
			lines = append(lines, &entity.PurchaseOrderLine{
				ID:             uuid.New().String(),
				OrderID:        order.ID,
				ItemID:         item.ID,
				Producto:       item.Producto,
				Talla:          item.Talla,
				Cantidad:       l.Cantidad,
				PrecioUnitario: item.Precio,
				Subtotal:       subtotal,
			})
			total = total.Add(subtotal)
		}

		order.Total = total
		order.Saldo = total
		order.Pagado = decimal.Zero
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, line := range lines {
			if err := orderRepo.CreateLine(line); err != nil {
				return err
			}
		}
		for _, item := range updated {
			if err := stockRepo.Update(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.generateDocument(ctx, order, lines)
	return toOrderResponse(order, lines), nil
}

// generateDocument produce el PDF y lo guarda una sola vez en el almacén.
// Un fallo aquí no invalida la orden ya confirmada: se registra y se sigue.
func (uc *CreateOrderUseCase) generateDocument(ctx context.Context, order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) {
	pdfBytes, err := uc.pdfGen.GenerateOrderPDF(ctx, order, lines)
	if err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo generar el PDF de la orden")
		return
	}
	name := fmt.Sprintf("orden_%s.pdf", order.ID)
	if err := uc.docs.Save(name, pdfBytes); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo guardar el PDF de la orden")
		return
	}
	if err := uc.orderRepo.SetDocumento(order.ID, name); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo registrar el documento de la orden")
		return
	}
	order.Documento = name
}

func toOrderResponse(order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:        order.ID,
		Maquila:   order.Maquila,
		Fecha:     order.Fecha,
		Total:     order.Total,
		Pagado:    order.Pagado,
		Saldo:     order.Saldo,
		Documento: order.Documento,
	}
	for _, l := range lines {
		out.Lineas = append(out.Lineas, dto.OrderLineResponse{
			Producto:       l.Producto,
			Talla:          l.Talla,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Subtotal:       l.Subtotal,
		})
	}
	return out
}
