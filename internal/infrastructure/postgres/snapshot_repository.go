package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo almacén de snapshots diarios sobre PostgreSQL (tabla
// inventory_daily). La captura de cambios para el detector la hace el
// trigger trg_inventory_daily_changes (ver migrations), no este adaptador.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

const snapshotColumns = `record_id, date, facility_id, item_name, category,
	opening_stock, received_qty, issued_qty, closing_stock, lead_time_days, criticality_level`

// ListAll devuelve el almacén completo (interfaz de lectura del motor).
func (r *SnapshotRepo) ListAll(ctx context.Context) ([]entity.InventorySnapshot, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM inventory_daily
		ORDER BY facility_id, item_name, date`, snapshotColumns)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all snapshots: %w", err)
	}
	defer rows.Close()
	return scanSnapshots(rows)
}

// List filtra por centro y/o ítem (vacío = sin filtro).
func (r *SnapshotRepo) List(ctx context.Context, facilityID, itemName string) ([]entity.InventorySnapshot, error) {
	var (
		where []string
		args  []any
	)
	if facilityID != "" {
		args = append(args, facilityID)
		where = append(where, fmt.Sprintf("facility_id = $%d", len(args)))
	}
	if itemName != "" {
		args = append(args, itemName)
		where = append(where, fmt.Sprintf("item_name = $%d", len(args)))
	}
	query := fmt.Sprintf("SELECT %s FROM inventory_daily", snapshotColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY facility_id, item_name, date"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()
	return scanSnapshots(rows)
}

// Upsert inserta o actualiza la fila diaria (fecha, centro, ítem).
func (r *SnapshotRepo) Upsert(ctx context.Context, s *entity.InventorySnapshot) error {
	if s.RecordID == "" {
		s.RecordID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_daily (record_id, date, facility_id, item_name, category,
			opening_stock, received_qty, issued_qty, closing_stock, lead_time_days, criticality_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (date, facility_id, item_name)
		DO UPDATE SET category = EXCLUDED.category,
			opening_stock = EXCLUDED.opening_stock,
			received_qty = EXCLUDED.received_qty,
			issued_qty = EXCLUDED.issued_qty,
			closing_stock = EXCLUDED.closing_stock,
			lead_time_days = EXCLUDED.lead_time_days,
			criticality_level = EXCLUDED.criticality_level`
	_, err := r.q.Exec(ctx, query,
		s.RecordID, s.Date, s.FacilityID, s.ItemName, s.Category,
		s.OpeningStock, s.ReceivedQty, s.IssuedQty, s.ClosingStock,
		s.LeadTimeDays, s.CriticalityLevel,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func scanSnapshots(rows pgx.Rows) ([]entity.InventorySnapshot, error) {
	var list []entity.InventorySnapshot
	for rows.Next() {
		var s entity.InventorySnapshot
		if err := rows.Scan(
			&s.RecordID, &s.Date, &s.FacilityID, &s.ItemName, &s.Category,
			&s.OpeningStock, &s.ReceivedQty, &s.IssuedQty, &s.ClosingStock,
			&s.LeadTimeDays, &s.CriticalityLevel,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
