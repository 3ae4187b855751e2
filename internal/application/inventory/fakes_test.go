package inventory_test

import (
	"context"
	"sort"

	"github.com/dcastano/inventario-taller/internal/application/inventory"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de repositorio. El fakeTxRunner ejecuta el
// callback directamente sobre los fakes: cada "transacción" es una llamada.
// ──────────────────────────────────────────────────────────────────────────────

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

func (f *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return f.GetByID(id)
}

func (f *fakeStockRepo) Update(item *entity.StockItem) error {
	copia := *item
	f.items[item.ID] = &copia
	return nil
}

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	return f.Update(item)
}

func (f *fakeStockRepo) List() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(f.items))
	for _, it := range f.items {
		copia := *it
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Producto < out[j].Producto })
	return out, nil
}

func (f *fakeStockRepo) ListBelowMinimum() ([]*entity.StockItem, error) {
	all, _ := f.List()
	var out []*entity.StockItem
	for _, it := range all {
		if it.Minimos != nil && it.Stock < *it.Minimos {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) ListInProduction() ([]*entity.StockItem, error) {
	all, _ := f.List()
	var out []*entity.StockItem
	for _, it := range all {
		if it.EnProduccion > 0 {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) RaiseAllMinimums(delta int) error {
	for _, it := range f.items {
		base := 0
		if it.Minimos != nil {
			base = *it.Minimos
		}
		nuevo := base + delta
		it.Minimos = &nuevo
	}
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	copia := *m
	f.movements = append(f.movements, &copia)
	return nil
}

func (f *fakeMovementRepo) ListRecent(tipo string, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(f.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if f.movements[i].Tipo == tipo {
			out = append(out, f.movements[i])
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListByItem(itemID string, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeSuggestionRepo struct {
	suggestions []*entity.ReorderSuggestion
}

func (f *fakeSuggestionRepo) DeleteAll() error {
	f.suggestions = nil
	return nil
}

func (f *fakeSuggestionRepo) Create(s *entity.ReorderSuggestion) error {
	copia := *s
	f.suggestions = append(f.suggestions, &copia)
	return nil
}

func (f *fakeSuggestionRepo) List() ([]*entity.ReorderSuggestion, error) {
	return f.suggestions, nil
}

type fakeTxRunner struct {
	stockRepo *fakeStockRepo
	movRepo   *fakeMovementRepo
	sugRepo   *fakeSuggestionRepo
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)
var _ inventory.ReconcileTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	return fn(f.stockRepo, f.movRepo)
}

func (f *fakeTxRunner) RunReconcile(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	sugRepo repository.ReorderSuggestionRepository,
) error) error {
	return fn(f.stockRepo, f.sugRepo)
}
