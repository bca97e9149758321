package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

var _ repository.PredictedRepository = (*PredictedRepo)(nil)

// PredictedRepo dataset predicho sobre PostgreSQL (tabla
// inventory_daily_predicted). El reemplazo completo corre en una sola
// transacción: DELETE + carga masiva, y el commit publica el dataset nuevo.
// Los lectores con READ COMMITTED ven el dataset anterior hasta el commit,
// nunca un estado intermedio.
type PredictedRepo struct {
	pool *pgxpool.Pool
}

// NewPredictedRepository construye el adaptador. Requiere el pool (no un
// Querier): ReplaceAll abre su propia transacción.
func NewPredictedRepository(pool *pgxpool.Pool) *PredictedRepo {
	return &PredictedRepo{pool: pool}
}

// ReplaceAll sustituye el dataset completo de forma atómica.
func (r *PredictedRepo) ReplaceAll(ctx context.Context, rows []entity.PredictedSnapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace predicted: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_daily_predicted`); err != nil {
		return fmt.Errorf("clear predicted: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"inventory_daily_predicted"},
		[]string{
			"record_id", "date", "facility_id", "item_name", "category",
			"opening_stock", "received_qty", "issued_qty", "closing_stock",
			"lead_time_days", "criticality_level", "avg_daily_usage", "predicted_stockout_days",
		},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			p := rows[i]
			return []any{
				p.RecordID, p.Date, p.FacilityID, p.ItemName, p.Category,
				p.OpeningStock, p.ReceivedQty, p.IssuedQty, p.ClosingStock,
				p.LeadTimeDays, p.CriticalityLevel, p.AvgDailyUsage, p.PredictedStockoutDays,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy predicted: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace predicted: %w", err)
	}
	return nil
}

// ListAll devuelve el dataset predicho vigente.
func (r *PredictedRepo) ListAll(ctx context.Context) ([]entity.PredictedSnapshot, error) {
	query := `
		SELECT record_id, date, facility_id, item_name, category,
			opening_stock, received_qty, issued_qty, closing_stock,
			lead_time_days, criticality_level, avg_daily_usage, predicted_stockout_days
		FROM inventory_daily_predicted
		ORDER BY facility_id, item_name, date`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list predicted: %w", err)
	}
	defer rows.Close()

	var list []entity.PredictedSnapshot
	for rows.Next() {
		var p entity.PredictedSnapshot
		if err := rows.Scan(
			&p.RecordID, &p.Date, &p.FacilityID, &p.ItemName, &p.Category,
			&p.OpeningStock, &p.ReceivedQty, &p.IssuedQty, &p.ClosingStock,
			&p.LeadTimeDays, &p.CriticalityLevel, &p.AvgDailyUsage, &p.PredictedStockoutDays,
		); err != nil {
			return nil, fmt.Errorf("scan predicted: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
