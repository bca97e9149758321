package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/swiftstock-api/internal/application/forecast"
)

var _ forecast.ChangeDetector = (*ChangeDetector)(nil)

// ChangeDetector detector de cambios sobre la tabla snapshot_changes, que
// llena el trigger trg_inventory_daily_changes en cada insert/update/delete
// de inventory_daily (ver migrations). El registro es durable: sobrevive a
// reinicios del proceso, así que los cambios acumulados mientras el servicio
// estaba suspendido se ven en el primer tick.
type ChangeDetector struct {
	q Querier
}

// NewChangeDetector construye el detector. Pasar pool o tx (Querier).
func NewChangeDetector(q Querier) *ChangeDetector {
	return &ChangeDetector{q: q}
}

// HasPendingChanges indica si hay filas sucias sin drenar.
func (d *ChangeDetector) HasPendingChanges(ctx context.Context) (bool, error) {
	var pending bool
	err := d.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM snapshot_changes)`).Scan(&pending)
	if err != nil {
		return false, fmt.Errorf("check pending changes: %w", err)
	}
	return pending, nil
}

// PendingChanges devuelve los change_id visibles al momento de la consulta.
// La visibilidad de Postgres hace el corte: una ingesta que confirma después
// de este SELECT no aparece en el conjunto, sin importar su changed_at, y
// por eso el drenaje por conjunto nunca la pierde.
func (d *ChangeDetector) PendingChanges(ctx context.Context) ([]int64, error) {
	rows, err := d.q.Query(ctx, `SELECT change_id FROM snapshot_changes ORDER BY change_id`)
	if err != nil {
		return nil, fmt.Errorf("list pending changes: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pending change: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Drain elimina exactamente el conjunto consultado y devuelve cuántos drenó.
// Lo registrado fuera del conjunto queda pendiente.
func (d *ChangeDetector) Drain(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := d.q.Exec(ctx, `DELETE FROM snapshot_changes WHERE change_id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("drain changes: %w", err)
	}
	return tag.RowsAffected(), nil
}
