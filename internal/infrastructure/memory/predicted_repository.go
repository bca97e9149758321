package memory

import (
	"context"
	"sync/atomic"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

var _ repository.PredictedRepository = (*PredictedRepo)(nil)

// PredictedRepo dataset predicho en memoria con semántica de reemplazo
// atómico por swap de puntero (copy-on-write): un lector concurrente ve el
// dataset anterior completo o el nuevo completo, nunca una mezcla.
type PredictedRepo struct {
	current atomic.Pointer[[]entity.PredictedSnapshot]
}

// NewPredictedRepository construye el dataset vacío.
func NewPredictedRepository() *PredictedRepo {
	r := &PredictedRepo{}
	empty := make([]entity.PredictedSnapshot, 0)
	r.current.Store(&empty)
	return r
}

// ReplaceAll publica el dataset nuevo en una sola operación.
func (r *PredictedRepo) ReplaceAll(ctx context.Context, rows []entity.PredictedSnapshot) error {
	next := make([]entity.PredictedSnapshot, len(rows))
	copy(next, rows)
	r.current.Store(&next)
	return nil
}

// ListAll devuelve una copia del dataset vigente.
func (r *PredictedRepo) ListAll(ctx context.Context) ([]entity.PredictedSnapshot, error) {
	cur := *r.current.Load()
	out := make([]entity.PredictedSnapshot, len(cur))
	copy(out, cur)
	return out, nil
}
