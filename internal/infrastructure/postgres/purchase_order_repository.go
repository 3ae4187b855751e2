package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `id, maquila, fecha, total, pagado, saldo, documento, COALESCE(creado_por, '')`

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create inserta la cabecera de la orden.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO ordenes_compra (id, maquila, fecha, total, pagado, saldo, documento, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	creadoPor := (*string)(nil)
	if order.CreadoPor != "" {
		creadoPor = &order.CreadoPor
	}
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Maquila, order.Fecha, order.Total, order.Pagado, order.Saldo,
		order.Documento, creadoPor,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateLine inserta una línea de la orden.
func (r *PurchaseOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	query := `
		INSERT INTO orden_lineas (id, order_id, item_id, producto, talla, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ItemID, line.Producto, line.Talla,
		line.Cantidad, line.PrecioUnitario, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM ordenes_compra WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order")
}

// GetForUpdate obtiene la cabecera y bloquea la fila para registrar abonos.
func (r *PurchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM ordenes_compra WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order for update")
}

// Update actualiza pagado y saldo de la cabecera.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `UPDATE ordenes_compra SET pagado = $2, saldo = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, order.ID, order.Pagado, order.Saldo)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// GetLines devuelve las líneas de una orden.
func (r *PurchaseOrderRepo) GetLines(orderID string) ([]*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, order_id, item_id, producto, talla, cantidad, precio_unitario, subtotal
		FROM orden_lineas WHERE order_id = $1 ORDER BY producto, talla`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.Producto, &l.Talla, &l.Cantidad, &l.PrecioUnitario, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List devuelve órdenes con paginación, más recientes primero.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM ordenes_compra ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.Maquila, &o.Fecha, &o.Total, &o.Pagado, &o.Saldo, &o.Documento, &o.CreadoPor); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// SetDocumento registra el nombre del PDF generado; solo si aún no tiene uno.
func (r *PurchaseOrderRepo) SetDocumento(orderID, documento string) error {
	query := `UPDATE ordenes_compra SET documento = $2 WHERE id = $1 AND documento = ''`
	_, err := r.q.Exec(context.Background(), query, orderID, documento)
	if err != nil {
		return fmt.Errorf("set order document: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) scanOne(row pgx.Row, op string) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(&o.ID, &o.Maquila, &o.Fecha, &o.Total, &o.Pagado, &o.Saldo, &o.Documento, &o.CreadoPor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}
