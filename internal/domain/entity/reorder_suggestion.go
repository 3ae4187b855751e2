package entity

import "time"

// ReorderSuggestion es una fila del reporte de faltantes: cantidad urgente
// (stock negativo) y faltante contra la cantidad objetivo. Datos derivados;
// la pasada de conciliación los borra y regenera completos.
type ReorderSuggestion struct {
	ID         string
	ItemID     string
	Producto   string
	Talla      string
	Urgente    int // |stock| cuando el stock es negativo
	Faltantes  int // max(objetivo - stock, 0)
	GeneradoEn time.Time
}
