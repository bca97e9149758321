package forecast

import (
	"context"
	"fmt"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	domforecast "github.com/jhoicas/swiftstock-api/internal/domain/forecast"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
	"github.com/jhoicas/swiftstock-api/pkg/logger"
)

// UseCase es el motor de pronóstico: lee el almacén de snapshots completo,
// deriva consumo promedio y horizonte de quiebre por fila, y sobreescribe el
// dataset predicho de forma atómica. Es el único escritor de ese dataset.
type UseCase struct {
	snapshots repository.SnapshotRepository
	predicted repository.PredictedRepository
	log       *logger.Logger
}

// NewUseCase construye el motor de pronóstico.
func NewUseCase(
	snapshots repository.SnapshotRepository,
	predicted repository.PredictedRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{snapshots: snapshots, predicted: predicted, log: log}
}

// PredictDemand ejecuta una corrida completa: lectura total → cómputo puro →
// reemplazo atómico. Idempotente: dos corridas seguidas sobre el mismo
// almacén producen datasets idénticos. Siempre devuelve un mensaje terminal;
// si falla la lectura o la escritura, el dataset anterior queda intacto y el
// error se propaga junto con la descripción del fallo.
func (uc *UseCase) PredictDemand(ctx context.Context) (string, error) {
	rows, err := uc.snapshots.ListAll(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("forecast: lectura del almacén de snapshots")
		return "forecast fallido: lectura del almacén", fmt.Errorf("leer snapshots: %w", err)
	}

	predicted := make([]entity.PredictedSnapshot, 0, len(rows))
	for _, s := range rows {
		predicted = append(predicted, domforecast.Predict(s))
	}

	if err := uc.predicted.ReplaceAll(ctx, predicted); err != nil {
		uc.log.Error().Err(err).Msg("forecast: reemplazo del dataset predicho")
		return "forecast fallido: escritura del dataset predicho", fmt.Errorf("reemplazar dataset predicho: %w", err)
	}

	uc.log.Info().Int("rows", len(predicted)).Msg("forecast: dataset predicho reemplazado")
	return fmt.Sprintf("forecast actualizado: %d filas", len(predicted)), nil
}
