package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, categoria, producto, talla, stock, minimos, en_produccion, precio, maquila, created_at, updated_at`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// GetByID obtiene un renglón del libro de stock.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM book_stock WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item")
}

// GetForUpdate obtiene el renglón y bloquea la fila (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM book_stock WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item for update")
}

// Create inserta un renglón nuevo.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO book_stock (id, categoria, producto, talla, stock, minimos, en_produccion, precio, maquila, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Categoria, item.Producto, item.Talla,
		item.Stock, item.Minimos, item.EnProduccion, item.Precio, item.Maquila,
	)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update actualiza cantidades y atributos del renglón.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE book_stock
		SET categoria = $2, producto = $3, talla = $4, stock = $5, minimos = $6,
		    en_produccion = $7, precio = $8, maquila = $9, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Categoria, item.Producto, item.Talla,
		item.Stock, item.Minimos, item.EnProduccion, item.Precio, item.Maquila,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// List devuelve el libro completo ordenado por producto y talla.
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM book_stock ORDER BY producto, talla`
	return r.queryMany(query)
}

// ListBelowMinimum devuelve los renglones con stock bajo el mínimo definido.
func (r *StockItemRepo) ListBelowMinimum() ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + ` FROM book_stock
		WHERE minimos IS NOT NULL AND stock < minimos
		ORDER BY producto, talla`
	return r.queryMany(query)
}

// ListInProduction devuelve los renglones con producción pendiente.
func (r *StockItemRepo) ListInProduction() ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + ` FROM book_stock
		WHERE en_produccion > 0
		ORDER BY producto, talla`
	return r.queryMany(query)
}

// RaiseAllMinimums sube los mínimos de todos los renglones en un solo
// statement; NULL cuenta como 0 antes de sumar.
func (r *StockItemRepo) RaiseAllMinimums(delta int) error {
	query := `UPDATE book_stock SET minimos = COALESCE(minimos, 0) + $1, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, delta)
	if err != nil {
		return fmt.Errorf("raise minimums: %w", err)
	}
	return nil
}

func (r *StockItemRepo) scanOne(row pgx.Row, op string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(
		&it.ID, &it.Categoria, &it.Producto, &it.Talla,
		&it.Stock, &it.Minimos, &it.EnProduccion, &it.Precio, &it.Maquila,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func (r *StockItemRepo) queryMany(query string, args ...any) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(
			&it.ID, &it.Categoria, &it.Producto, &it.Talla,
			&it.Stock, &it.Minimos, &it.EnProduccion, &it.Precio, &it.Maquila,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
