package entity

import "github.com/shopspring/decimal"

// UnboundedStockoutDays es el centinela para horizonte de quiebre no acotado:
// cuando el consumo promedio es cero el stock nunca se agota, y la fila debe
// clasificar como OK (queda fuera de la superficie de alertas).
const UnboundedStockoutDays int64 = 9999

// PredictedSnapshot es la fila derivada que produce el motor de pronóstico a
// partir de un InventorySnapshot. El dataset completo se reemplaza en cada
// corrida (full overwrite, sin historial); el motor es su único escritor.
type PredictedSnapshot struct {
	InventorySnapshot

	AvgDailyUsage         decimal.Decimal // >= 0, consumo diario estimado
	PredictedStockoutDays int64           // floor(closing/avg); UnboundedStockoutDays si avg = 0
}

// HorizonUnbounded indica si la fila tiene horizonte de quiebre no acotado.
func (p PredictedSnapshot) HorizonUnbounded() bool {
	return p.PredictedStockoutDays >= UnboundedStockoutDays
}
