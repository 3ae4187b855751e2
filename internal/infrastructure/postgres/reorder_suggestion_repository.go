package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

var _ repository.ReorderSuggestionRepository = (*ReorderSuggestionRepo)(nil)

// ReorderSuggestionRepo implementación del puerto ReorderSuggestionRepository
// sobre PostgreSQL.
type ReorderSuggestionRepo struct {
	db Querier
}

// NewReorderSuggestionRepository construye el adaptador; acepta pool o tx.
func NewReorderSuggestionRepository(db Querier) *ReorderSuggestionRepo {
	return &ReorderSuggestionRepo{db: db}
}

// DeleteAll borra el reporte completo. La conciliación lo regenera en la
// misma transacción.
func (r *ReorderSuggestionRepo) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM sugerencias_reposicion`)
	if err != nil {
		return fmt.Errorf("delete reorder suggestions: %w", err)
	}
	return nil
}

// Create persiste una fila del reporte de faltantes.
func (r *ReorderSuggestionRepo) Create(s *entity.ReorderSuggestion) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sugerencias_reposicion (id, item_id, producto, talla, urgente, faltantes, generado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.ItemID, s.Producto, s.Talla, s.Urgente, s.Faltantes, s.GeneradoEn,
	)
	if err != nil {
		return fmt.Errorf("insert reorder suggestion: %w", err)
	}
	return nil
}

// List devuelve el reporte ordenado por producto y talla.
func (r *ReorderSuggestionRepo) List() ([]*entity.ReorderSuggestion, error) {
	query := `
		SELECT id, item_id, producto, talla, urgente, faltantes, generado_en
		FROM sugerencias_reposicion
		ORDER BY producto, talla`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reorder suggestions: %w", err)
	}
	defer rows.Close()

	var out []*entity.ReorderSuggestion
	for rows.Next() {
		var s entity.ReorderSuggestion
		if err := rows.Scan(&s.ID, &s.ItemID, &s.Producto, &s.Talla, &s.Urgente, &s.Faltantes, &s.GeneradoEn); err != nil {
			return nil, fmt.Errorf("scan reorder suggestion: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
