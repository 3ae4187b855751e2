package orders_test

import (
	"context"
	"errors"

	"github.com/dcastano/inventario-taller/internal/application/orders"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// Fakes en memoria para los puertos de órdenes.

type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func newFakeStockRepo(items ...*entity.StockItem) *fakeStockRepo {
	m := make(map[string]*entity.StockItem, len(items))
	for _, it := range items {
		copia := *it
		m[it.ID] = &copia
	}
	return &fakeStockRepo{items: m}
}

func (f *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *it
	return &copia, nil
}

func (f *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) { return f.GetByID(id) }

func (f *fakeStockRepo) Update(item *entity.StockItem) error {
	copia := *item
	f.items[item.ID] = &copia
	return nil
}

func (f *fakeStockRepo) Create(item *entity.StockItem) error            { return f.Update(item) }
func (f *fakeStockRepo) List() ([]*entity.StockItem, error)             { return nil, nil }
func (f *fakeStockRepo) ListBelowMinimum() ([]*entity.StockItem, error) { return nil, nil }
func (f *fakeStockRepo) ListInProduction() ([]*entity.StockItem, error) { return nil, nil }
func (f *fakeStockRepo) RaiseAllMinimums(delta int) error               { return nil }

type fakeOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
	lines  []*entity.PurchaseOrderLine
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.PurchaseOrder)}
}

func (f *fakeOrderRepo) Create(order *entity.PurchaseOrder) error {
	copia := *order
	f.orders[order.ID] = &copia
	return nil
}

func (f *fakeOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	copia := *line
	f.lines = append(f.lines, &copia)
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copia := *o
	return &copia, nil
}

func (f *fakeOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) { return f.GetByID(id) }

func (f *fakeOrderRepo) Update(order *entity.PurchaseOrder) error {
	if _, ok := f.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *order
	f.orders[order.ID] = &copia
	return nil
}

func (f *fakeOrderRepo) GetLines(orderID string) ([]*entity.PurchaseOrderLine, error) {
	var out []*entity.PurchaseOrderLine
	for _, l := range f.lines {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) SetDocumento(orderID, documento string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Documento = documento
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	copia := *p
	f.payments = append(f.payments, &copia)
	return nil
}

func (f *fakePaymentRepo) ListByOrder(orderID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	stockRepo   *fakeStockRepo
	orderRepo   *fakeOrderRepo
	paymentRepo *fakePaymentRepo
}

var _ orders.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) RunOrders(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	orderRepo repository.PurchaseOrderRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return fn(f.stockRepo, f.orderRepo, f.paymentRepo)
}

type fakePDFGenerator struct {
	fail  bool
	calls int
}

func (f *fakePDFGenerator) GenerateOrderPDF(_ context.Context, _ *entity.PurchaseOrder, _ []*entity.PurchaseOrderLine) ([]byte, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("render falló")
	}
	return []byte("%PDF-fake"), nil
}

type fakeDocStore struct {
	files map[string][]byte
}

func newFakeDocStore() *fakeDocStore { return &fakeDocStore{files: make(map[string][]byte)} }

func (f *fakeDocStore) Save(name string, data []byte) error {
	if _, ok := f.files[name]; ok {
		return domain.ErrDocumentExists
	}
	f.files[name] = data
	return nil
}

func (f *fakeDocStore) Get(name string) ([]byte, error) {
	data, ok := f.files[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}
