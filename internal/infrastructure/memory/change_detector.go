package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/swiftstock-api/internal/application/forecast"
)

var (
	_ forecast.ChangeDetector = (*ChangeDetector)(nil)
	_ ChangeRecorder          = (*ChangeDetector)(nil)
)

type changeEntry struct {
	id  int64
	key string
}

// ChangeDetector registro en memoria de filas sucias desde el último drenaje.
// Equivalente al par trigger + tabla snapshot_changes del driver postgres:
// cada cambio recibe un ID secuencial y el drenaje opera por conjunto de IDs.
// Un mismo key puede aparecer varias veces (at-least-once); no hay garantía
// de orden.
type ChangeDetector struct {
	mu      sync.Mutex
	nextID  int64
	pending []changeEntry
}

// NewChangeDetector construye el detector vacío.
func NewChangeDetector() *ChangeDetector {
	return &ChangeDetector{}
}

// Record captura la identidad de una fila escrita o eliminada.
func (d *ChangeDetector) Record(key string) {
	d.mu.Lock()
	d.nextID++
	d.pending = append(d.pending, changeEntry{id: d.nextID, key: key})
	d.mu.Unlock()
}

// HasPendingChanges indica si hay cambios sin consumir.
func (d *ChangeDetector) HasPendingChanges(ctx context.Context) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending) > 0, nil
}

// PendingChanges devuelve los IDs de los cambios registrados hasta ahora.
func (d *ChangeDetector) PendingChanges(ctx context.Context) ([]int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]int64, len(d.pending))
	for i, e := range d.pending {
		ids[i] = e.id
	}
	return ids, nil
}

// Drain elimina exactamente el conjunto identificado. Los cambios fuera del
// conjunto (los que llegaron después de la consulta) quedan pendientes para
// el siguiente ciclo.
func (d *ChangeDetector) Drain(ctx context.Context, ids []int64) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	drain := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drain[id] = true
	}

	kept := d.pending[:0]
	var drained int64
	for _, e := range d.pending {
		if drain[e.id] {
			drained++
		} else {
			kept = append(kept, e)
		}
	}
	d.pending = kept
	return drained, nil
}
