package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

var _ repository.FacilityRepository = (*FacilityRepo)(nil)

// FacilityRepo datos de referencia de centros en memoria.
type FacilityRepo struct {
	mu   sync.RWMutex
	rows map[string]entity.Facility
}

// NewFacilityRepository construye el repositorio vacío.
func NewFacilityRepository() *FacilityRepo {
	return &FacilityRepo{rows: make(map[string]entity.Facility)}
}

// Create registra el centro; duplicado = domain.ErrDuplicate.
func (r *FacilityRepo) Create(ctx context.Context, f *entity.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[f.FacilityID]; ok {
		return domain.ErrDuplicate
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	r.rows[f.FacilityID] = *f
	return nil
}

// GetByID devuelve el centro o domain.ErrNotFound.
func (r *FacilityRepo) GetByID(ctx context.Context, facilityID string) (*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.rows[facilityID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

// List devuelve los centros ordenados por ID.
func (r *FacilityRepo) List(ctx context.Context) ([]entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Facility, 0, len(r.rows))
	for _, f := range r.rows {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FacilityID < out[j].FacilityID })
	return out, nil
}

var _ repository.TransferLogRepository = (*TransferLogRepo)(nil)

// TransferLogRepo ledger de traslados en memoria (append + lectura).
type TransferLogRepo struct {
	mu   sync.RWMutex
	rows []entity.TransferLog
}

// NewTransferLogRepository construye el ledger vacío.
func NewTransferLogRepository() *TransferLogRepo {
	return &TransferLogRepo{}
}

// Create agrega la entrada al ledger.
func (r *TransferLogRepo) Create(ctx context.Context, t *entity.TransferLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *t)
	return nil
}

// List devuelve las últimas entradas, la más reciente primero.
func (r *TransferLogRepo) List(ctx context.Context, limit int) ([]entity.TransferLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.TransferLog, len(r.rows))
	copy(out, r.rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
