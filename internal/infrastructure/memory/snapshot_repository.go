package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// ChangeRecorder recibe la identidad de cada fila escrita. Lo implementa el
// detector de cambios en memoria; en el driver postgres este rol lo cumple
// el trigger sobre inventory_daily.
type ChangeRecorder interface {
	Record(key string)
}

// SnapshotRepo almacén de snapshots en memoria (driver de desarrollo y
// fakes de test). Cada escritura notifica al recorder para que el detector
// de cambios la capture.
type SnapshotRepo struct {
	mu       sync.RWMutex
	rows     map[string]entity.InventorySnapshot // key = (fecha, centro, ítem)
	recorder ChangeRecorder
}

// NewSnapshotRepository construye el almacén. recorder puede ser nil
// (sin captura de cambios).
func NewSnapshotRepository(recorder ChangeRecorder) *SnapshotRepo {
	return &SnapshotRepo{
		rows:     make(map[string]entity.InventorySnapshot),
		recorder: recorder,
	}
}

// ListAll devuelve todas las filas en orden estable (centro, ítem, fecha).
func (r *SnapshotRepo) ListAll(ctx context.Context) ([]entity.InventorySnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.InventorySnapshot, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	sortSnapshots(out)
	return out, nil
}

// List filtra por centro y/o ítem (vacío = sin filtro).
func (r *SnapshotRepo) List(ctx context.Context, facilityID, itemName string) ([]entity.InventorySnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.InventorySnapshot, 0)
	for _, s := range r.rows {
		if facilityID != "" && s.FacilityID != facilityID {
			continue
		}
		if itemName != "" && s.ItemName != itemName {
			continue
		}
		out = append(out, s)
	}
	sortSnapshots(out)
	return out, nil
}

// Upsert inserta o actualiza la fila diaria y registra el cambio.
func (r *SnapshotRepo) Upsert(ctx context.Context, s *entity.InventorySnapshot) error {
	r.mu.Lock()
	key := s.Key()
	if s.RecordID == "" {
		if prev, ok := r.rows[key]; ok {
			s.RecordID = prev.RecordID
		} else {
			s.RecordID = uuid.New().String()
		}
	}
	r.rows[key] = *s
	r.mu.Unlock()

	if r.recorder != nil {
		r.recorder.Record(key)
	}
	return nil
}

// Delete elimina la fila diaria (la ingesta externa puede retirar registros);
// el cambio también se captura.
func (r *SnapshotRepo) Delete(ctx context.Context, key string) {
	r.mu.Lock()
	delete(r.rows, key)
	r.mu.Unlock()

	if r.recorder != nil {
		r.recorder.Record(key)
	}
}

func sortSnapshots(rows []entity.InventorySnapshot) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.FacilityID != b.FacilityID {
			return a.FacilityID < b.FacilityID
		}
		if a.ItemName != b.ItemName {
			return a.ItemName < b.ItemName
		}
		return a.Date.Before(b.Date)
	})
}
