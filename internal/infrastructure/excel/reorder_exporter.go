// Package excel exporta el reporte de faltantes como libro XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dcastano/inventario-taller/internal/application/dto"
)

// ReorderExporter genera el XLSX del reporte de faltantes.
type ReorderExporter struct{}

// NewReorderExporter construye el exportador.
func NewReorderExporter() *ReorderExporter {
	return &ReorderExporter{}
}

// Export arma el libro con una fila por sugerencia y devuelve sus bytes.
func (e *ReorderExporter) Export(rows []dto.ReorderRowDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Producto")
	f.SetCellValue(sheet, "B1", "Talla")
	f.SetCellValue(sheet, "C1", "Urgente")
	f.SetCellValue(sheet, "D1", "Faltantes")

	for i, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), r.Producto)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), r.Talla)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), r.Urgente)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), r.Faltantes)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
