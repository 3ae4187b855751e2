package inventory

// Color es la banda de estado de un renglón de stock, usada solo para presentación.
type Color string

const (
	ColorVerde    Color = "verde"
	ColorAmarillo Color = "amarillo"
	ColorRojo     Color = "rojo"
	ColorAzul     Color = "azul" // stock negativo
)

// Classify mapea (stock, mínimos, en producción) a su banda de color (servicio de dominio).
// Reglas, en orden:
//
//	stock < 0          -> azul
//	stock < mínimos    -> rojo
//	stock < 2*mínimos  -> amarillo
//	resto              -> verde
//
// Si mínimos es NULL no hay umbral que evaluar y siempre es verde.
// Función total y determinista; mínimos == 0 no es caso especial.
func Classify(stock int, minimos *int, enProduccion int) Color {
	_ = enProduccion // reservado: revisiones previas lo usaban para la banda amarilla
	if minimos == nil {
		return ColorVerde
	}
	if stock < 0 {
		return ColorAzul
	}
	if stock < *minimos {
		return ColorRojo
	}
	if stock < 2*(*minimos) {
		return ColorAmarillo
	}
	return ColorVerde
}
