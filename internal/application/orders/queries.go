package orders

import (
	"context"
	"fmt"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// OrderQueryUseCase consultas de órdenes y descarga del PDF generado.
type OrderQueryUseCase struct {
	orderRepo   repository.PurchaseOrderRepository
	paymentRepo repository.PaymentRepository
	docs        DocumentStore
}

// NewOrderQueryUseCase construye el caso de uso de consulta de órdenes.
func NewOrderQueryUseCase(
	orderRepo repository.PurchaseOrderRepository,
	paymentRepo repository.PaymentRepository,
	docs DocumentStore,
) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo, paymentRepo: paymentRepo, docs: docs}
}

// GetOrder devuelve cabecera y líneas de una orden.
func (uc *OrderQueryUseCase) GetOrder(_ context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.GetLines(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// ListOrders devuelve las órdenes más recientes primero.
func (uc *OrderQueryUseCase) ListOrders(_ context.Context, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o, nil))
	}
	return out, nil
}

// ListPayments devuelve los abonos de una orden en orden de registro.
func (uc *OrderQueryUseCase) ListPayments(_ context.Context, orderID string) ([]dto.PaymentResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentResponse{ID: p.ID, Monto: p.Monto, Fecha: p.Fecha})
	}
	return out, nil
}

// DownloadOrderPDF recupera el resumen generado de la orden desde el almacén
// de documentos. Devuelve los bytes y el nombre del archivo.
func (uc *OrderQueryUseCase) DownloadOrderPDF(_ context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.Documento == "" {
		return nil, "", fmt.Errorf("%w: la orden no tiene documento generado", domain.ErrNotFound)
	}
	data, err := uc.docs.Get(order.Documento)
	if err != nil {
		return nil, "", fmt.Errorf("obtener documento: %w", err)
	}
	return data, order.Documento, nil
}
