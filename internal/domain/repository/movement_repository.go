package repository

import "github.com/dcastano/inventario-taller/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el registro de
// movimientos. Solo inserción y lectura: los movimientos no se modifican.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListRecent devuelve los últimos movimientos del tipo dado, más recientes primero.
	ListRecent(tipo string, limit int) ([]*entity.Movement, error)
	ListByItem(itemID string, limit int) ([]*entity.Movement, error)
}
