package repository

import "github.com/dcastano/inventario-taller/internal/domain/entity"

// ReorderSuggestionRepository define el puerto para el reporte de faltantes.
// La conciliación borra todas las filas y las regenera en la misma transacción.
type ReorderSuggestionRepository interface {
	DeleteAll() error
	Create(s *entity.ReorderSuggestion) error
	List() ([]*entity.ReorderSuggestion, error)
}
