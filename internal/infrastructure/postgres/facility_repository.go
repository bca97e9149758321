package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

var _ repository.FacilityRepository = (*FacilityRepo)(nil)

// FacilityRepo datos de referencia de centros sobre PostgreSQL.
type FacilityRepo struct {
	q Querier
}

// NewFacilityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacilityRepository(q Querier) *FacilityRepo {
	return &FacilityRepo{q: q}
}

// Create persiste un centro nuevo.
func (r *FacilityRepo) Create(ctx context.Context, f *entity.Facility) error {
	query := `
		INSERT INTO facilities (facility_id, facility_name, city, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(ctx, query, f.FacilityID, f.Name, f.City, f.Latitude, f.Longitude)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create facility: %w", err)
	}
	return nil
}

// GetByID devuelve el centro o domain.ErrNotFound.
func (r *FacilityRepo) GetByID(ctx context.Context, facilityID string) (*entity.Facility, error) {
	query := `
		SELECT facility_id, facility_name, city, latitude, longitude, created_at
		FROM facilities WHERE facility_id = $1`
	var f entity.Facility
	err := r.q.QueryRow(ctx, query, facilityID).Scan(
		&f.FacilityID, &f.Name, &f.City, &f.Latitude, &f.Longitude, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return &f, nil
}

// List devuelve todos los centros ordenados por ID.
func (r *FacilityRepo) List(ctx context.Context) ([]entity.Facility, error) {
	query := `
		SELECT facility_id, facility_name, city, latitude, longitude, created_at
		FROM facilities ORDER BY facility_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var list []entity.Facility
	for rows.Next() {
		var f entity.Facility
		if err := rows.Scan(&f.FacilityID, &f.Name, &f.City, &f.Latitude, &f.Longitude, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
