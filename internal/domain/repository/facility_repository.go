package repository

import (
	"context"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
)

// FacilityRepository define el puerto para los datos de referencia de centros.
type FacilityRepository interface {
	Create(ctx context.Context, f *entity.Facility) error
	GetByID(ctx context.Context, facilityID string) (*entity.Facility, error)
	List(ctx context.Context) ([]entity.Facility, error)
}

// TransferLogRepository define el puerto del ledger de traslados.
// Solo append + lectura: el core no procesa traslados.
type TransferLogRepository interface {
	Create(ctx context.Context, t *entity.TransferLog) error
	List(ctx context.Context, limit int) ([]entity.TransferLog, error)
}
