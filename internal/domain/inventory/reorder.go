package inventory

// ReorderQuantity es el resultado del cálculo de reposición para un renglón.
type ReorderQuantity struct {
	Urgente   int // unidades vendidas sin stock (valor absoluto del stock negativo)
	Faltantes int // unidades que faltan para cubrir la cantidad objetivo
}

// ComputeReorderQuantity calcula la reposición recomendada contra una cantidad
// objetivo. No muta el stock: lo consume la pasada de conciliación y el reporte
// de faltantes.
func ComputeReorderQuantity(stock, objetivo int) ReorderQuantity {
	var r ReorderQuantity
	if stock < 0 {
		r.Urgente = -stock
	}
	if objetivo > stock {
		r.Faltantes = objetivo - stock
	}
	return r
}
