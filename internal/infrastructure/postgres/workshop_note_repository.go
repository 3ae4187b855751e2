package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

var _ repository.WorkshopNoteRepository = (*WorkshopNoteRepo)(nil)

// WorkshopNoteRepo implementación del puerto WorkshopNoteRepository sobre
// PostgreSQL. La tabla tiene una sola fila con id fijo.
type WorkshopNoteRepo struct {
	pool *pgxpool.Pool
}

// NewWorkshopNoteRepository construye el adaptador de la nota del taller.
func NewWorkshopNoteRepository(pool *pgxpool.Pool) *WorkshopNoteRepo {
	return &WorkshopNoteRepo{pool: pool}
}

// Get obtiene la nota actual, nil si nunca se ha escrito.
func (r *WorkshopNoteRepo) Get() (*entity.WorkshopNote, error) {
	query := `SELECT texto, actualizado_en, actualizado_por FROM nota_taller WHERE id = 1`
	var n entity.WorkshopNote
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&n.Texto, &n.ActualizadoEn, &n.ActualizadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workshop note: %w", err)
	}
	return &n, nil
}

// Upsert reemplaza la nota. La última escritura gana.
func (r *WorkshopNoteRepo) Upsert(note *entity.WorkshopNote) error {
	query := `
		INSERT INTO nota_taller (id, texto, actualizado_en, actualizado_por)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			texto = EXCLUDED.texto,
			actualizado_en = EXCLUDED.actualizado_en,
			actualizado_por = EXCLUDED.actualizado_por`
	_, err := r.pool.Exec(context.Background(), query,
		note.Texto, note.ActualizadoEn, note.ActualizadoPor,
	)
	if err != nil {
		return fmt.Errorf("upsert workshop note: %w", err)
	}
	return nil
}
