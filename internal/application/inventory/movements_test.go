package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/inventario-taller/internal/application/inventory"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

func newTestItem(id string, stock, enProduccion int) *entity.StockItem {
	return &entity.StockItem{
		ID:           id,
		Categoria:    "Camisas",
		Producto:     "Camisa Oxford",
		Talla:        "M",
		Stock:        stock,
		Minimos:      intPtr(5),
		EnProduccion: enProduccion,
		Precio:       decimal.NewFromInt(45),
	}
}

func newMovementEnv(items ...*entity.StockItem) (*inventory.MovementUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		stockRepo: newFakeStockRepo(items...),
		movRepo:   &fakeMovementRepo{},
		sugRepo:   &fakeSuggestionRepo{},
	}
	return inventory.NewMovementUseCase(runner), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas del taller
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterOutbound_DescuentaStockYRegistraSalida(t *testing.T) {
	uc, env := newMovementEnv(newTestItem("1", 10, 0))

	err := uc.RegisterOutbound(context.Background(), "1", 3, "u-taller")
	require.NoError(t, err)

	item, _ := env.stockRepo.GetByID("1")
	assert.Equal(t, 7, item.Stock)
	require.Len(t, env.movRepo.movements, 1)
	mov := env.movRepo.movements[0]
	assert.Equal(t, entity.MovementSalida, mov.Tipo)
	assert.Equal(t, 3, mov.Cantidad)
	assert.Equal(t, "Camisa Oxford", mov.Producto)
}

// La política vigente permite stock negativo: una salida mayor al stock
// disponible se acepta y deja el saldo bajo cero.
func TestRegisterOutbound_PermiteStockNegativo(t *testing.T) {
	uc, env := newMovementEnv(newTestItem("1", 2, 0))

	err := uc.RegisterOutbound(context.Background(), "1", 5, "u-taller")
	require.NoError(t, err)

	item, _ := env.stockRepo.GetByID("1")
	assert.Equal(t, -3, item.Stock)
}

func TestRegisterOutbound_CantidadInvalida(t *testing.T) {
	uc, env := newMovementEnv(newTestItem("1", 10, 0))

	assert.ErrorIs(t, uc.RegisterOutbound(context.Background(), "1", 0, "u"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.RegisterOutbound(context.Background(), "1", -4, "u"), domain.ErrInvalidInput)

	item, _ := env.stockRepo.GetByID("1")
	assert.Equal(t, 10, item.Stock, "el stock no debe cambiar")
	assert.Empty(t, env.movRepo.movements)
}

func TestRegisterOutbound_RenglonDesconocido(t *testing.T) {
	uc, _ := newMovementEnv(newTestItem("1", 10, 0))
	assert.ErrorIs(t, uc.RegisterOutbound(context.Background(), "99", 1, "u"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envíos de la maquila
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterInbound_SumaStockYDescuentaProduccion(t *testing.T) {
	uc, env := newMovementEnv(newTestItem("1", 4, 10))

	err := uc.RegisterInbound(context.Background(), "1", 6, "u-maquila")
	require.NoError(t, err)

	item, _ := env.stockRepo.GetByID("1")
	assert.Equal(t, 10, item.Stock)
	assert.Equal(t, 4, item.EnProduccion)
	require.Len(t, env.movRepo.movements, 1)
	assert.Equal(t, entity.MovementEnvio, env.movRepo.movements[0].Tipo)
}

func TestRegisterInbound_RechazaSobreProduccion(t *testing.T) {
	uc, env := newMovementEnv(newTestItem("1", 4, 5))

	err := uc.RegisterInbound(context.Background(), "1", 6, "u-maquila")
	assert.ErrorIs(t, err, domain.ErrExceedsProduction)

	item, _ := env.stockRepo.GetByID("1")
	assert.Equal(t, 4, item.Stock, "rechazo no debe tocar el stock")
	assert.Equal(t, 5, item.EnProduccion)
	assert.Empty(t, env.movRepo.movements)
}

// Salida seguida de envío por la misma cantidad restaura el stock exacto
// (conservación de cantidad entre estados).
func TestOutboundInbound_RoundTripRestauraStock(t *testing.T) {
	uc, env := newMovementEnv(newTestItem("1", 8, 20))

	require.NoError(t, uc.RegisterOutbound(context.Background(), "1", 5, "u"))
	require.NoError(t, uc.RegisterInbound(context.Background(), "1", 5, "u"))

	item, _ := env.stockRepo.GetByID("1")
	assert.Equal(t, 8, item.Stock)
	assert.Equal(t, 15, item.EnProduccion)
	assert.Len(t, env.movRepo.movements, 2, "ambos movimientos quedan en el registro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lotes de formulario: cada línea es independiente
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterOutboundBatch_AplicaValidasYReportaInvalida(t *testing.T) {
	uc, env := newMovementEnv(
		newTestItem("1", 10, 0),
		newTestItem("2", 10, 0),
		newTestItem("3", 10, 0),
	)

	form := map[string]string{
		"salida_1": "2",
		"salida_2": "abc", // no numérica
		"salida_3": "4",
		"otro":     "9", // prefijo ajeno, se ignora
	}
	result := uc.RegisterOutboundBatch(context.Background(), form, "u")

	assert.Equal(t, 2, result.Aplicadas)
	require.Len(t, result.Errores, 1)
	assert.Equal(t, "salida_2", result.Errores[0].Key)

	i1, _ := env.stockRepo.GetByID("1")
	i2, _ := env.stockRepo.GetByID("2")
	i3, _ := env.stockRepo.GetByID("3")
	assert.Equal(t, 8, i1.Stock)
	assert.Equal(t, 10, i2.Stock, "la línea inválida no se aplica")
	assert.Equal(t, 6, i3.Stock)
}

func TestRegisterInboundBatch_LineaRechazadaNoFrenaElLote(t *testing.T) {
	uc, env := newMovementEnv(
		newTestItem("1", 0, 3),
		newTestItem("2", 0, 3),
	)

	form := map[string]string{
		"envio_1": "5", // supera producción
		"envio_2": "3",
	}
	result := uc.RegisterInboundBatch(context.Background(), form, "u")

	assert.Equal(t, 1, result.Aplicadas)
	require.Len(t, result.Errores, 1)
	assert.Equal(t, "envio_1", result.Errores[0].Key)
	assert.Contains(t, result.Errores[0].Message, "producción")

	i2, _ := env.stockRepo.GetByID("2")
	assert.Equal(t, 3, i2.Stock)
	assert.Equal(t, 0, i2.EnProduccion)
}

func TestBatch_ValoresVaciosSeSaltanSinError(t *testing.T) {
	uc, env := newMovementEnv(newTestItem("1", 10, 0))

	form := map[string]string{
		"salida_1": "",
		"salida_5": "  ",
	}
	result := uc.RegisterOutboundBatch(context.Background(), form, "u")

	assert.Equal(t, 0, result.Aplicadas)
	assert.Empty(t, result.Errores)
	item, _ := env.stockRepo.GetByID("1")
	assert.Equal(t, 10, item.Stock)
}

func TestBatch_RenglonDesconocidoReportaError(t *testing.T) {
	uc, _ := newMovementEnv(newTestItem("1", 10, 0))

	result := uc.RegisterOutboundBatch(context.Background(), map[string]string{"salida_77": "1"}, "u")

	assert.Equal(t, 0, result.Aplicadas)
	require.Len(t, result.Errores, 1)
	assert.Equal(t, "77", result.Errores[0].ItemID)
}
