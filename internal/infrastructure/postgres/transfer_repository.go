package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

var _ repository.TransferLogRepository = (*TransferLogRepo)(nil)

// TransferLogRepo ledger de traslados sobre PostgreSQL (tabla transfer_logs).
// Auditoría inerte: el core no lo procesa.
type TransferLogRepo struct {
	q Querier
}

// NewTransferLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferLogRepository(q Querier) *TransferLogRepo {
	return &TransferLogRepo{q: q}
}

// Create agrega una entrada al ledger.
func (r *TransferLogRepo) Create(ctx context.Context, t *entity.TransferLog) error {
	if t.TransferID == "" {
		t.TransferID = uuid.New().String()
	}
	query := `
		INSERT INTO transfer_logs (transfer_id, item_name, from_facility_id, to_facility_id, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(ctx, query,
		t.TransferID, t.ItemName, t.FromFacilityID, t.ToFacilityID, t.Quantity, t.Status,
	)
	if err != nil {
		return fmt.Errorf("create transfer log: %w", err)
	}
	return nil
}

// List devuelve las últimas entradas, la más reciente primero.
func (r *TransferLogRepo) List(ctx context.Context, limit int) ([]entity.TransferLog, error) {
	query := `
		SELECT transfer_id, item_name, from_facility_id, to_facility_id, quantity, status, created_at
		FROM transfer_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transfer logs: %w", err)
	}
	defer rows.Close()

	var list []entity.TransferLog
	for rows.Next() {
		var t entity.TransferLog
		if err := rows.Scan(&t.TransferID, &t.ItemName, &t.FromFacilityID, &t.ToFacilityID, &t.Quantity, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer log: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
