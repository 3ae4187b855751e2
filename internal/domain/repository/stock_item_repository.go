package repository

import "github.com/dcastano/inventario-taller/internal/domain/entity"

// StockItemRepository define el puerto para el libro de stock (DIP).
// Las operaciones de escritura se usan dentro de transacciones.
type StockItemRepository interface {
	GetByID(id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Create(item *entity.StockItem) error
	// List devuelve todo el libro ordenado por producto.
	List() ([]*entity.StockItem, error)
	// ListBelowMinimum devuelve los renglones con stock < mínimos.
	ListBelowMinimum() ([]*entity.StockItem, error)
	// ListInProduction devuelve los renglones con producción pendiente (> 0).
	ListInProduction() ([]*entity.StockItem, error)
	// RaiseAllMinimums suma delta a los mínimos de todos los renglones en un
	// solo statement; mínimos NULL cuenta como 0 antes de sumar.
	RaiseAllMinimums(delta int) error
}
