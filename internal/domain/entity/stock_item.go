package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa una referencia del inventario: una combinación de
// producto y talla con su stock, su umbral de reposición y la cantidad
// encargada a producción.
//
// Stock puede ser negativo: registra unidades vendidas por encargo que
// todavía no existen físicamente.
type StockItem struct {
	ID           string
	Categoria    string
	Producto     string
	Talla        string
	Stock        int
	Minimos      *int // nil cuando la referencia no tiene umbral configurado
	EnProduccion int
	Precio       decimal.Decimal
	Maquila      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
