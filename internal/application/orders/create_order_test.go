package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/application/orders"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

func newOrderItem(id, producto, talla string, precio int64) *entity.StockItem {
	return &entity.StockItem{
		ID:       id,
		Producto: producto,
		Talla:    talla,
		Stock:    10,
		Minimos:  intPtr(5),
		Precio:   decimal.NewFromInt(precio),
	}
}

type orderEnv struct {
	uc     *orders.CreateOrderUseCase
	runner *fakeTxRunner
	pdfGen *fakePDFGenerator
	docs   *fakeDocStore
}

func newCreateOrderEnv(pdfFail bool, items ...*entity.StockItem) orderEnv {
	runner := &fakeTxRunner{
		stockRepo:   newFakeStockRepo(items...),
		orderRepo:   newFakeOrderRepo(),
		paymentRepo: &fakePaymentRepo{},
	}
	pdfGen := &fakePDFGenerator{fail: pdfFail}
	docs := newFakeDocStore()
	return orderEnv{
		uc:     orders.NewCreateOrderUseCase(runner, runner.orderRepo, pdfGen, docs),
		runner: runner,
		pdfGen: pdfGen,
		docs:   docs,
	}
}

func TestCreateOrder_TotalEsLaSumaDeSubtotales(t *testing.T) {
	env := newCreateOrderEnv(false,
		newOrderItem("1", "Camisa Oxford", "M", 45),
		newOrderItem("2", "Pantalón Chino", "32", 80),
	)

	out, err := env.uc.CreateOrder(context.Background(), "u-admin", dto.CreateOrderRequest{
		Maquila: "Confecciones Norte",
		Lines: []dto.OrderLineRequest{
			{ItemID: "1", Cantidad: 10}, // 450
			{ItemID: "2", Cantidad: 5},  // 400
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Lineas, 2)
	suma := decimal.Zero
	for _, l := range out.Lineas {
		assert.True(t, l.Subtotal.Equal(l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))))
		suma = suma.Add(l.Subtotal)
	}
	assert.True(t, out.Total.Equal(suma), "total %s != suma de subtotales %s", out.Total, suma)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(850)))
	assert.True(t, out.Saldo.Equal(out.Total), "orden nueva: saldo == total")
	assert.True(t, out.Pagado.IsZero())
}

func TestCreateOrder_SumaEnProduccion(t *testing.T) {
	item := newOrderItem("1", "Camisa Oxford", "M", 45)
	item.EnProduccion = 3
	env := newCreateOrderEnv(false, item)

	_, err := env.uc.CreateOrder(context.Background(), "u", dto.CreateOrderRequest{
		Maquila: "Confecciones Norte",
		Lines:   []dto.OrderLineRequest{{ItemID: "1", Cantidad: 7}},
	})
	require.NoError(t, err)

	got, _ := env.runner.stockRepo.GetByID("1")
	assert.Equal(t, 10, got.EnProduccion, "la orden suma a lo ya pendiente")
}

func TestCreateOrder_GeneraYGuardaPDF(t *testing.T) {
	env := newCreateOrderEnv(false, newOrderItem("1", "Camisa Oxford", "M", 45))

	out, err := env.uc.CreateOrder(context.Background(), "u", dto.CreateOrderRequest{
		Maquila: "Confecciones Norte",
		Lines:   []dto.OrderLineRequest{{ItemID: "1", Cantidad: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, env.pdfGen.calls)
	assert.NotEmpty(t, out.Documento)
	data, derr := env.docs.Get(out.Documento)
	require.NoError(t, derr)
	assert.NotEmpty(t, data)

	persisted, _ := env.runner.orderRepo.GetByID(out.ID)
	assert.Equal(t, out.Documento, persisted.Documento)
}

// Un fallo del renderizador no invalida la orden ya confirmada.
func TestCreateOrder_FalloDePDFNoInvalidaLaOrden(t *testing.T) {
	env := newCreateOrderEnv(true, newOrderItem("1", "Camisa Oxford", "M", 45))

	out, err := env.uc.CreateOrder(context.Background(), "u", dto.CreateOrderRequest{
		Maquila: "Confecciones Norte",
		Lines:   []dto.OrderLineRequest{{ItemID: "1", Cantidad: 2}},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Documento)

	persisted, _ := env.runner.orderRepo.GetByID(out.ID)
	require.NotNil(t, persisted)
	assert.True(t, persisted.Total.Equal(decimal.NewFromInt(90)))
}

func TestCreateOrder_Validaciones(t *testing.T) {
	env := newCreateOrderEnv(false, newOrderItem("1", "Camisa Oxford", "M", 45))
	ctx := context.Background()

	_, err := env.uc.CreateOrder(ctx, "u", dto.CreateOrderRequest{Maquila: "", Lines: []dto.OrderLineRequest{{ItemID: "1", Cantidad: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.CreateOrder(ctx, "u", dto.CreateOrderRequest{Maquila: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.CreateOrder(ctx, "u", dto.CreateOrderRequest{Maquila: "X", Lines: []dto.OrderLineRequest{{ItemID: "1", Cantidad: 0}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.CreateOrder(ctx, "u", dto.CreateOrderRequest{Maquila: "X", Lines: []dto.OrderLineRequest{{ItemID: "99", Cantidad: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, env.runner.orderRepo.orders, "ninguna orden debe quedar persistida")
	assert.Equal(t, 0, env.pdfGen.calls)
}
