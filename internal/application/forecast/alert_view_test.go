package forecast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/swiftstock-api/internal/application/forecast"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	domforecast "github.com/jhoicas/swiftstock-api/internal/domain/forecast"
	"github.com/jhoicas/swiftstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/swiftstock-api/pkg/logger"
)

func predictedFrom(rows ...entity.InventorySnapshot) []entity.PredictedSnapshot {
	out := make([]entity.PredictedSnapshot, 0, len(rows))
	for _, s := range rows {
		out = append(out, domforecast.Predict(s))
	}
	return out
}

// TestAlertView_FiltraYOrdena: solo filas no-OK, ordenadas por horizonte de
// quiebre ascendente (lo más urgente primero).
func TestAlertView_FiltraYOrdena(t *testing.T) {
	predicted := memory.NewPredictedRepository()
	view := forecast.NewAlertView(predicted, time.Minute, logger.Nop())
	ctx := context.Background()

	require.NoError(t, predicted.ReplaceAll(ctx, predictedFrom(
		snapshot("HF-001", "Oxytocin Injection", 10, 0),    // days 0 -> URGENT
		snapshot("HF-002", "Epinephrine", 100, 150),        // days 10 -> WARNING
		snapshot("HF-003", "Surgical Masks", 100, 600),     // days 40 -> OK, fuera
		snapshot("HF-004", "Folic Acid", 0, 0),             // sin consumo -> fuera
		snapshot("HF-005", "Insulin Glargine", 100, 100),   // days 6 -> URGENT
	)))

	view.Refresh(ctx)

	alerts, refreshedAt := view.Alerts()
	require.Len(t, alerts, 3)
	assert.False(t, refreshedAt.IsZero())

	assert.Equal(t, "HF-001", alerts[0].FacilityID)
	assert.Equal(t, entity.StatusUrgentReorder, alerts[0].Status)
	assert.Equal(t, "HF-005", alerts[1].FacilityID)
	assert.Equal(t, "HF-002", alerts[2].FacilityID)
	assert.Equal(t, entity.StatusWarning, alerts[2].Status)
}

// TestAlertView_RefreshRecalcula: la vista sigue los reemplazos del dataset
// predicho en cada refresco.
func TestAlertView_RefreshRecalcula(t *testing.T) {
	predicted := memory.NewPredictedRepository()
	view := forecast.NewAlertView(predicted, time.Minute, logger.Nop())
	ctx := context.Background()

	require.NoError(t, predicted.ReplaceAll(ctx, predictedFrom(
		snapshot("HF-001", "Oxytocin Injection", 10, 0),
	)))
	view.Refresh(ctx)
	alerts, _ := view.Alerts()
	require.Len(t, alerts, 1)

	// El ítem se repone: la alerta desaparece en el siguiente refresco.
	require.NoError(t, predicted.ReplaceAll(ctx, predictedFrom(
		snapshot("HF-001", "Oxytocin Injection", 100, 600),
	)))
	alerts, _ = view.Alerts()
	require.Len(t, alerts, 1, "antes del refresco la vista conserva la proyección anterior")

	view.Refresh(ctx)
	alerts, _ = view.Alerts()
	assert.Empty(t, alerts)
}

// TestAlertView_LecturaFallidaConservaProyeccion: con el dataset ilegible la
// vista prefiere datos viejos a datos ausentes.
func TestAlertView_LecturaFallidaConservaProyeccion(t *testing.T) {
	inner := memory.NewPredictedRepository()
	ctx := context.Background()
	require.NoError(t, inner.ReplaceAll(ctx, predictedFrom(
		snapshot("HF-001", "Oxytocin Injection", 10, 0),
	)))

	view := forecast.NewAlertView(inner, time.Minute, logger.Nop())
	view.Refresh(ctx)
	before, refreshedBefore := view.Alerts()
	require.Len(t, before, 1)

	failingView := forecast.NewAlertView(&failingListPredictedRepo{inner}, time.Minute, logger.Nop())
	failingView.Refresh(ctx)
	alerts, refreshedAt := failingView.Alerts()
	assert.Empty(t, alerts, "la vista fallida nunca llegó a proyectar")
	assert.True(t, refreshedAt.IsZero())

	// La vista sana no se ve afectada.
	after, refreshedAfter := view.Alerts()
	assert.Equal(t, before, after)
	assert.Equal(t, refreshedBefore, refreshedAfter)
}

// TestAlertView_StartRefrescaEnCadencia: el refresher corre solo y respeta el
// target lag configurado.
func TestAlertView_StartRefrescaEnCadencia(t *testing.T) {
	predicted := memory.NewPredictedRepository()
	view := forecast.NewAlertView(predicted, 20*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, predicted.ReplaceAll(ctx, predictedFrom(
		snapshot("HF-001", "Oxytocin Injection", 10, 0),
	)))

	view.Start(ctx)

	assert.Eventually(t, func() bool {
		alerts, _ := view.Alerts()
		return len(alerts) == 1
	}, time.Second, 5*time.Millisecond)

	// Reemplazo del dataset: la vista lo refleja dentro del target lag.
	require.NoError(t, predicted.ReplaceAll(ctx, predictedFrom(
		snapshot("HF-001", "Oxytocin Injection", 100, 600),
	)))
	assert.Eventually(t, func() bool {
		alerts, _ := view.Alerts()
		return len(alerts) == 0
	}, time.Second, 5*time.Millisecond)
}
