package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los movimientos solo se insertan; no hay Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, item_id, producto, talla, tipo, cantidad, fecha, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	creadoPor := (*string)(nil)
	if m.CreadoPor != "" {
		creadoPor = &m.CreadoPor
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemID, m.Producto, m.Talla, m.Tipo, m.Cantidad, m.Fecha, creadoPor,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos movimientos del tipo dado, más recientes primero.
func (r *MovementRepo) ListRecent(tipo string, limit int) ([]*entity.Movement, error) {
	query := `
		SELECT id, item_id, producto, talla, tipo, cantidad, fecha, COALESCE(creado_por, '')
		FROM movimientos WHERE tipo = $1
		ORDER BY fecha DESC LIMIT $2`
	return r.queryMany(query, tipo, limit)
}

// ListByItem devuelve los movimientos de un renglón, más recientes primero.
func (r *MovementRepo) ListByItem(itemID string, limit int) ([]*entity.Movement, error) {
	query := `
		SELECT id, item_id, producto, talla, tipo, cantidad, fecha, COALESCE(creado_por, '')
		FROM movimientos WHERE item_id = $1
		ORDER BY fecha DESC LIMIT $2`
	return r.queryMany(query, itemID, limit)
}

func (r *MovementRepo) queryMany(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Producto, &m.Talla, &m.Tipo, &m.Cantidad, &m.Fecha, &m.CreadoPor); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
