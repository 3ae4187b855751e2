package inventory

import (
	"context"
	"time"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
	domaininv "github.com/dcastano/inventario-taller/internal/domain/inventory"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre el libro de stock y los
// registros de movimientos; anota cada renglón con su banda de color.
type StockQueryUseCase struct {
	stockRepo repository.StockItemRepository
	movRepo   repository.MovementRepository
	sugRepo   repository.ReorderSuggestionRepository
	noteRepo  repository.WorkshopNoteRepository
}

// NewStockQueryUseCase construye el caso de uso de consulta.
func NewStockQueryUseCase(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	sugRepo repository.ReorderSuggestionRepository,
	noteRepo repository.WorkshopNoteRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, movRepo: movRepo, sugRepo: sugRepo, noteRepo: noteRepo}
}

// ListStock devuelve el libro completo ordenado por producto.
func (uc *StockQueryUseCase) ListStock(_ context.Context) ([]dto.StockRowDTO, error) {
	items, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	return toStockRows(items), nil
}

// ListBelowMinimum devuelve los renglones con stock bajo el mínimo (vista admin).
func (uc *StockQueryUseCase) ListBelowMinimum(_ context.Context) ([]dto.StockRowDTO, error) {
	items, err := uc.stockRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	return toStockRows(items), nil
}

// ListInProduction devuelve los renglones pendientes con la maquila.
func (uc *StockQueryUseCase) ListInProduction(_ context.Context) ([]dto.StockRowDTO, error) {
	items, err := uc.stockRepo.ListInProduction()
	if err != nil {
		return nil, err
	}
	return toStockRows(items), nil
}

// RecentMovements devuelve los últimos movimientos del tipo dado.
func (uc *StockQueryUseCase) RecentMovements(_ context.Context, tipo string, limit int) ([]dto.MovementDTO, error) {
	if tipo != entity.MovementEnvio && tipo != entity.MovementSalida {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	movs, err := uc.movRepo.ListRecent(tipo, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementDTO{
			ID: m.ID, Producto: m.Producto, Talla: m.Talla,
			Tipo: m.Tipo, Cantidad: m.Cantidad, Fecha: m.Fecha,
		})
	}
	return out, nil
}

// ReorderReport devuelve el reporte de faltantes vigente.
func (uc *StockQueryUseCase) ReorderReport(_ context.Context) ([]dto.ReorderRowDTO, error) {
	sugs, err := uc.sugRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReorderRowDTO, 0, len(sugs))
	for _, s := range sugs {
		out = append(out, dto.ReorderRowDTO{
			Producto: s.Producto, Talla: s.Talla,
			Urgente: s.Urgente, Faltantes: s.Faltantes, GeneradoEn: s.GeneradoEn,
		})
	}
	return out, nil
}

// GetNote devuelve la nota del taller (vacía si nunca se ha escrito).
func (uc *StockQueryUseCase) GetNote(_ context.Context) (*dto.NoteDTO, error) {
	note, err := uc.noteRepo.Get()
	if err != nil {
		return nil, err
	}
	if note == nil {
		return &dto.NoteDTO{}, nil
	}
	return &dto.NoteDTO{Texto: note.Texto, ActualizadoEn: note.ActualizadoEn, ActualizadoPor: note.ActualizadoPor}, nil
}

// SaveNote reemplaza la nota del taller; la última escritura gana.
func (uc *StockQueryUseCase) SaveNote(_ context.Context, texto, userID string) error {
	return uc.noteRepo.Upsert(&entity.WorkshopNote{
		Texto:          texto,
		ActualizadoEn:  time.Now(),
		ActualizadoPor: userID,
	})
}

func toStockRows(items []*entity.StockItem) []dto.StockRowDTO {
	rows := make([]dto.StockRowDTO, 0, len(items))
	for _, it := range items {
		rows = append(rows, dto.StockRowDTO{
			ID:           it.ID,
			Categoria:    it.Categoria,
			Producto:     it.Producto,
			Talla:        it.Talla,
			Stock:        it.Stock,
			Minimos:      it.Minimos,
			EnProduccion: it.EnProduccion,
			Precio:       it.Precio.StringFixed(2),
			Maquila:      it.Maquila,
			Color:        string(domaininv.Classify(it.Stock, it.Minimos, it.EnProduccion)),
		})
	}
	return rows
}
