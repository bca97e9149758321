package forecast_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/forecast"
)

// ──────────────────────────────────────────────────────────────────────────────
// El cálculo es el contrato de compatibilidad del motor: la fracción 0.15 y la
// división entera deben reproducirse exactas. Estos tests fijan los vectores.
// ──────────────────────────────────────────────────────────────────────────────

func TestAvgDailyUsage_FraccionExacta(t *testing.T) {
	cases := []struct {
		opening  string
		expected string
	}{
		{"100", "15"},
		{"200", "30"},
		{"1", "0.15"},
		{"33", "4.95"},
		{"0", "0"},
		{"600", "90"},
	}
	for _, tc := range cases {
		got := forecast.AvgDailyUsage(decimal.RequireFromString(tc.opening))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
			"opening=%s: esperado %s, obtenido %s", tc.opening, tc.expected, got)
	}
}

func TestStockoutDays_DivisionEntera(t *testing.T) {
	cases := []struct {
		closing  string
		avg      string
		expected int64
	}{
		{"50", "10", 5},
		{"100", "15", 6},  // 6.66 -> floor 6
		{"105", "15", 7},  // exacto
		{"209", "15", 13}, // 13.93 -> floor 13
		{"210", "15", 14},
		{"0", "15", 0},
	}
	for _, tc := range cases {
		got := forecast.StockoutDays(decimal.RequireFromString(tc.closing), decimal.RequireFromString(tc.avg))
		assert.Equal(t, tc.expected, got, "closing=%s avg=%s", tc.closing, tc.avg)
	}
}

// TestStockoutDays_ConsumoCero valida la política adoptada para la división
// por cero: consumo cero = horizonte no acotado (centinela), nunca un panic.
func TestStockoutDays_ConsumoCero(t *testing.T) {
	got := forecast.StockoutDays(decimal.RequireFromString("500"), decimal.Zero)
	assert.Equal(t, entity.UnboundedStockoutDays, got)

	// Y un horizonte no acotado clasifica OK: fuera de la superficie de alertas.
	assert.Equal(t, entity.StatusOK, forecast.Classify(got))
}

// TestStockoutDays_ClosingNegativo: dato sucio upstream pasa sin validar,
// pero el horizonte se acota en cero (nunca negativo).
func TestStockoutDays_ClosingNegativo(t *testing.T) {
	got := forecast.StockoutDays(decimal.RequireFromString("-30"), decimal.RequireFromString("10"))
	assert.Equal(t, int64(0), got)
}

// TestClassify_Fronteras fija las fronteras de clasificación: 6 URGENT,
// 7 y 13 WARNING, 14 OK.
func TestClassify_Fronteras(t *testing.T) {
	cases := []struct {
		days     int64
		expected string
	}{
		{0, entity.StatusUrgentReorder},
		{6, entity.StatusUrgentReorder},
		{7, entity.StatusWarning},
		{13, entity.StatusWarning},
		{14, entity.StatusOK},
		{100, entity.StatusOK},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, forecast.Classify(tc.days), "days=%d", tc.days)
	}
}

// TestSuggestedReorderQty_VectorEjemplo reproduce el ejemplo de referencia:
// avg=10, closing=50, days=5 -> 30*10 - 50 = 250 y estado URGENT_REORDER.
func TestSuggestedReorderQty_VectorEjemplo(t *testing.T) {
	avg := decimal.RequireFromString("10")
	closing := decimal.RequireFromString("50")

	qty := forecast.SuggestedReorderQty(5, avg, closing)
	assert.True(t, qty.Equal(decimal.RequireFromString("250")), "obtenido %s", qty)
	assert.Equal(t, entity.StatusUrgentReorder, forecast.Classify(5))
}

func TestSuggestedReorderQty_HorizonteSano(t *testing.T) {
	qty := forecast.SuggestedReorderQty(14, decimal.RequireFromString("10"), decimal.RequireFromString("500"))
	assert.True(t, qty.IsZero(), "con horizonte >= 14 la cantidad sugerida es cero, obtenido %s", qty)
}

func TestPredict_DerivaFilaCompleta(t *testing.T) {
	s := entity.InventorySnapshot{
		FacilityID:   "HF-001",
		ItemName:     "Oxytocin Injection",
		OpeningStock: decimal.RequireFromString("100"),
		ClosingStock: decimal.RequireFromString("100"),
	}
	p := forecast.Predict(s)

	require.True(t, p.AvgDailyUsage.Equal(decimal.RequireFromString("15")))
	assert.Equal(t, int64(6), p.PredictedStockoutDays)
	assert.Equal(t, "HF-001", p.FacilityID, "la fila predicha conserva los campos del snapshot")
}

func TestAlert_FiltraOK(t *testing.T) {
	// Fila sana: no produce alerta.
	sana := forecast.Predict(entity.InventorySnapshot{
		FacilityID:   "HF-001",
		ItemName:     "Surgical Masks",
		OpeningStock: decimal.RequireFromString("100"),
		ClosingStock: decimal.RequireFromString("600"),
	})
	_, ok := forecast.Alert(sana)
	assert.False(t, ok)

	// Fila en crisis: alerta URGENT con cantidad sugerida.
	crisis := forecast.Predict(entity.InventorySnapshot{
		FacilityID:   "HF-002",
		ItemName:     "Oxytocin Injection",
		OpeningStock: decimal.RequireFromString("10"),
		ClosingStock: decimal.RequireFromString("0"),
	})
	a, ok := forecast.Alert(crisis)
	require.True(t, ok)
	assert.Equal(t, entity.StatusUrgentReorder, a.Status)
	// 30*1.5 - 0 = 45
	assert.True(t, a.SuggestedReorderQty.Equal(decimal.RequireFromString("45")), "obtenido %s", a.SuggestedReorderQty)

	// Consumo cero: horizonte no acotado, excluida de la superficie.
	cero := forecast.Predict(entity.InventorySnapshot{
		FacilityID:   "HF-003",
		ItemName:     "Folic Acid",
		OpeningStock: decimal.Zero,
		ClosingStock: decimal.Zero,
	})
	_, ok = forecast.Alert(cero)
	assert.False(t, ok)
}
