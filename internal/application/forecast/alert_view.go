package forecast

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	domforecast "github.com/jhoicas/swiftstock-api/internal/domain/forecast"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
	"github.com/jhoicas/swiftstock-api/pkg/logger"
)

// AlertView mantiene la proyección de reposición sobre el dataset predicho.
// Se refresca en background en su propia cadencia (el target lag configurado),
// desacoplada del scheduler del motor: la vista nunca se dispara explícitamente
// desde una corrida. La caché se publica por swap atómico de puntero, así los
// lectores siempre ven una proyección completa (vieja o nueva, nunca a medias).
type AlertView struct {
	predicted repository.PredictedRepository
	targetLag time.Duration
	log       *logger.Logger

	cache atomic.Pointer[alertProjection]
}

type alertProjection struct {
	alerts      []entity.ReorderAlert
	refreshedAt time.Time
}

// NewAlertView construye la vista con el target lag configurado.
func NewAlertView(predicted repository.PredictedRepository, targetLag time.Duration, log *logger.Logger) *AlertView {
	v := &AlertView{predicted: predicted, targetLag: targetLag, log: log}
	v.cache.Store(&alertProjection{alerts: []entity.ReorderAlert{}})
	return v
}

// Start arranca el refresher en una goroutine hasta que el contexto se
// cancele. Refresca de inmediato y luego en cada tick del target lag, lo que
// acota la staleness de la vista respecto del último reemplazo del dataset.
func (v *AlertView) Start(ctx context.Context) {
	go func() {
		v.Refresh(ctx)

		ticker := time.NewTicker(v.targetLag)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				v.log.Info().Msg("alert view: refresher detenido")
				return
			case <-ticker.C:
				v.Refresh(ctx)
			}
		}
	}()
}

// Refresh re-deriva la proyección completa desde el dataset predicho y la
// publica. Si la lectura falla se conserva la proyección anterior (la vista
// prefiere datos viejos a datos ausentes).
func (v *AlertView) Refresh(ctx context.Context) {
	rows, err := v.predicted.ListAll(ctx)
	if err != nil {
		v.log.Error().Err(err).Msg("alert view: lectura del dataset predicho")
		return
	}

	alerts := make([]entity.ReorderAlert, 0)
	for _, p := range rows {
		if a, ok := domforecast.Alert(p); ok {
			alerts = append(alerts, a)
		}
	}
	// Orden de la lista de reposición: lo más urgente primero.
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].PredictedStockoutDays < alerts[j].PredictedStockoutDays
	})

	v.cache.Store(&alertProjection{alerts: alerts, refreshedAt: time.Now()})
	v.log.Debug().Int("alerts", len(alerts)).Msg("alert view: proyección refrescada")
}

// Alerts devuelve la proyección vigente y su marca de refresco. El slice
// devuelto es de solo lectura: no debe mutarse.
func (v *AlertView) Alerts() ([]entity.ReorderAlert, time.Time) {
	p := v.cache.Load()
	return p.alerts, p.refreshedAt
}

// TargetLag expone la staleness máxima declarada de la vista.
func (v *AlertView) TargetLag() time.Duration {
	return v.targetLag
}
