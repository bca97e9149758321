package forecast

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jhoicas/swiftstock-api/pkg/logger"
)

// Scheduler dispara el motor de pronóstico en cadencia fija, condicionado al
// detector de cambios. Máquina de dos estados (IDLE/RUNNING) con garantía
// single-flight: a lo sumo una corrida del motor en vuelo; un tick que llega
// con una corrida en curso se descarta en silencio, nunca es un error.
type Scheduler struct {
	uc       *UseCase
	detector ChangeDetector
	interval time.Duration
	log      *logger.Logger

	running atomic.Bool // false = IDLE, true = RUNNING
}

// NewScheduler construye el scheduler con el intervalo configurado.
func NewScheduler(uc *UseCase, detector ChangeDetector, interval time.Duration, log *logger.Logger) *Scheduler {
	return &Scheduler{uc: uc, detector: detector, interval: interval, log: log}
}

// Start arranca el loop en una goroutine hasta que el contexto se cancele.
// El primer chequeo es inmediato (al reanudar no se espera un intervalo
// completo); los siguientes siguen el ticker.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.Tick(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.log.Info().Msg("scheduler: detenido")
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
}

// Tick procesa un ciclo de scheduling: si hay una corrida en curso se
// descarta; si no hay cambios pendientes no invoca el motor; si los hay,
// corre el motor de forma síncrona y drena exactamente el conjunto de
// cambios consultado antes de la corrida. Lo que llegue (o confirme) durante
// la corrida no está en el conjunto y sobrevive al siguiente ciclo.
func (s *Scheduler) Tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Debug().Msg("scheduler: tick descartado, corrida en curso")
		return
	}
	defer s.running.Store(false)

	ids, err := s.detector.PendingChanges(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduler: consulta del detector de cambios")
		return
	}
	if len(ids) == 0 {
		s.log.Debug().Msg("scheduler: sin cambios pendientes, ciclo omitido")
		return
	}

	msg, err := s.uc.PredictDemand(ctx)
	if err != nil {
		// Corrida fallida: no se drena, los cambios quedan pendientes y el
		// siguiente tick reintenta.
		s.log.Error().Err(err).Str("status", msg).Msg("scheduler: corrida fallida")
		return
	}

	drained, err := s.detector.Drain(ctx, ids)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduler: drenaje del detector de cambios")
		return
	}
	s.log.Info().Int64("drained", drained).Str("status", msg).Msg("scheduler: ciclo completado")
}

// Running expone el estado del gate (para introspección y tests).
func (s *Scheduler) Running() bool {
	return s.running.Load()
}
