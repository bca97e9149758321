package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
)

// Fracción fija del stock de apertura usada como estimación del consumo
// diario. Modelo naive a propósito: el valor es parte del contrato de
// compatibilidad con el pipeline original y no debe recalibrarse aquí.
var usageRate = decimal.RequireFromString("0.15")

// Umbrales de clasificación y cobertura objetivo (en días).
const (
	urgentThresholdDays  = 7
	warningThresholdDays = 14
	targetCoverDays      = 30
)

// AvgDailyUsage estima el consumo diario: opening_stock * 0.15.
func AvgDailyUsage(openingStock decimal.Decimal) decimal.Decimal {
	return openingStock.Mul(usageRate)
}

// StockoutDays calcula el horizonte de quiebre: floor(closing/avg).
// Con avg = 0 el cociente no está definido; la política adoptada es horizonte
// no acotado (centinela UnboundedStockoutDays), que clasifica como OK.
func StockoutDays(closingStock, avgDailyUsage decimal.Decimal) int64 {
	if avgDailyUsage.LessThanOrEqual(decimal.Zero) {
		return entity.UnboundedStockoutDays
	}
	days := closingStock.Div(avgDailyUsage).Floor().IntPart()
	if days < 0 {
		// Closing negativo pasa sin validar (dato sucio upstream); el floor
		// daría un horizonte negativo, se acota en cero.
		return 0
	}
	if days > entity.UnboundedStockoutDays {
		return entity.UnboundedStockoutDays
	}
	return days
}

// Predict deriva la fila predicha completa a partir de un snapshot.
func Predict(s entity.InventorySnapshot) entity.PredictedSnapshot {
	avg := AvgDailyUsage(s.OpeningStock)
	return entity.PredictedSnapshot{
		InventorySnapshot:     s,
		AvgDailyUsage:         avg,
		PredictedStockoutDays: StockoutDays(s.ClosingStock, avg),
	}
}

// Classify asigna el estado según el horizonte de quiebre:
// < 7 días URGENT_REORDER, < 14 WARNING, resto OK.
func Classify(stockoutDays int64) string {
	switch {
	case stockoutDays < urgentThresholdDays:
		return entity.StatusUrgentReorder
	case stockoutDays < warningThresholdDays:
		return entity.StatusWarning
	default:
		return entity.StatusOK
	}
}

// SuggestedReorderQty calcula la cantidad sugerida de pedido para cubrir 30
// días de consumo: 30*avg - closing cuando el horizonte es menor a 14 días,
// cero en caso contrario.
func SuggestedReorderQty(stockoutDays int64, avgDailyUsage, closingStock decimal.Decimal) decimal.Decimal {
	if stockoutDays >= warningThresholdDays {
		return decimal.Zero
	}
	return decimal.NewFromInt(targetCoverDays).Mul(avgDailyUsage).Sub(closingStock)
}

// Alert proyecta una fila predicha sobre la vista de reposición. Devuelve
// ok=false para filas con estado OK (incluido el horizonte no acotado), que
// quedan fuera de la superficie de alertas.
func Alert(p entity.PredictedSnapshot) (entity.ReorderAlert, bool) {
	status := Classify(p.PredictedStockoutDays)
	if status == entity.StatusOK {
		return entity.ReorderAlert{}, false
	}
	return entity.ReorderAlert{
		FacilityID:            p.FacilityID,
		ItemName:              p.ItemName,
		ClosingStock:          p.ClosingStock,
		AvgDailyUsage:         p.AvgDailyUsage,
		PredictedStockoutDays: p.PredictedStockoutDays,
		Status:                status,
		SuggestedReorderQty:   SuggestedReorderQty(p.PredictedStockoutDays, p.AvgDailyUsage, p.ClosingStock),
	}, true
}
