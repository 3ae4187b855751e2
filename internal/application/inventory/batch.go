package inventory

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dcastano/inventario-taller/internal/application/dto"
)

// BatchLine es una línea parseada de un formulario por lotes.
// Las claves tienen la forma prefijo_<itemID> y el valor es la cantidad.
type BatchLine struct {
	Key      string
	ItemID   string
	Cantidad int
}

// ParseBatch extrae las líneas con el prefijo dado de un envío de formulario.
// Claves sin el prefijo se ignoran; valores vacíos se saltan sin error (campos
// no diligenciados); valores no numéricos producen un error de línea. Las
// líneas se devuelven en orden estable por clave.
func ParseBatch(prefix string, form map[string]string) ([]BatchLine, []dto.BatchLineError) {
	keys := make([]string, 0, len(form))
	for k := range form {
		if strings.HasPrefix(k, prefix+"_") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var lines []BatchLine
	var errs []dto.BatchLineError
	for _, k := range keys {
		value := strings.TrimSpace(form[k])
		if value == "" {
			continue
		}
		itemID := strings.TrimPrefix(k, prefix+"_")
		if itemID == "" {
			errs = append(errs, dto.BatchLineError{Key: k, Message: "clave sin id de renglón"})
			continue
		}
		cantidad, err := strconv.Atoi(value)
		if err != nil {
			errs = append(errs, dto.BatchLineError{Key: k, ItemID: itemID, Message: "cantidad no numérica"})
			continue
		}
		lines = append(lines, BatchLine{Key: k, ItemID: itemID, Cantidad: cantidad})
	}
	return lines, errs
}
