package dto

import "time"

// StockRowDTO renglón del libro de stock con su banda de color para la vista.
type StockRowDTO struct {
	ID           string `json:"id"`
	Categoria    string `json:"categoria"`
	Producto     string `json:"producto"`
	Talla        string `json:"talla"`
	Stock        int    `json:"stock"`
	Minimos      *int   `json:"minimos"`
	EnProduccion int    `json:"en_produccion"`
	Precio       string `json:"precio"`
	Maquila      string `json:"maquila,omitempty"`
	Color        string `json:"color"`
}

// BatchLineError error de una línea del lote; las demás líneas se aplican igual.
type BatchLineError struct {
	Key     string `json:"key"`               // clave del formulario, p. ej. salida_7
	ItemID  string `json:"item_id,omitempty"` // vacío si la clave no parseó
	Message string `json:"message"`
}

// BatchResultDTO resultado de un envío de formulario por lotes.
type BatchResultDTO struct {
	Aplicadas int              `json:"aplicadas"`
	Errores   []BatchLineError `json:"errores,omitempty"`
}

// MovementDTO movimiento del registro de auditoría.
type MovementDTO struct {
	ID       string    `json:"id"`
	Producto string    `json:"producto"`
	Talla    string    `json:"talla"`
	Tipo     string    `json:"tipo"`
	Cantidad int       `json:"cantidad"`
	Fecha    time.Time `json:"fecha"`
}

// ReorderRowDTO fila del reporte de faltantes.
type ReorderRowDTO struct {
	Producto   string    `json:"producto"`
	Talla      string    `json:"talla"`
	Urgente    int       `json:"urgente"`
	Faltantes  int       `json:"faltantes"`
	GeneradoEn time.Time `json:"generado_en"`
}

// NoteDTO nota del taller.
type NoteDTO struct {
	Texto          string    `json:"texto" form:"texto"`
	ActualizadoEn  time.Time `json:"actualizado_en,omitempty"`
	ActualizadoPor string    `json:"actualizado_por,omitempty"`
}
