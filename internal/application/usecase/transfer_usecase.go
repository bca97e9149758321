package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/swiftstock-api/internal/application/dto"
	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

// TransferUseCase registra entradas en el ledger de traslados. El ledger es
// auditoría inerte: acá no hay lógica transaccional de traslado (no se mueve
// stock), solo consistencia referencial con los centros.
type TransferUseCase struct {
	transfers  repository.TransferLogRepository
	facilities repository.FacilityRepository
}

// NewTransferUseCase construye el caso de uso del ledger.
func NewTransferUseCase(transfers repository.TransferLogRepository, facilities repository.FacilityRepository) *TransferUseCase {
	return &TransferUseCase{transfers: transfers, facilities: facilities}
}

// Create agrega una entrada al ledger validando que ambos centros existan.
func (uc *TransferUseCase) Create(ctx context.Context, in dto.TransferRequest) (*entity.TransferLog, error) {
	if strings.TrimSpace(in.ItemName) == "" ||
		in.FromFacilityID == "" || in.ToFacilityID == "" ||
		in.FromFacilityID == in.ToFacilityID ||
		in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, id := range []string{in.FromFacilityID, in.ToFacilityID} {
		if _, err := uc.facilities.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	t := &entity.TransferLog{
		TransferID:     uuid.New().String(),
		ItemName:       strings.TrimSpace(in.ItemName),
		FromFacilityID: in.FromFacilityID,
		ToFacilityID:   in.ToFacilityID,
		Quantity:       in.Quantity,
		Status:         entity.TransferPending,
	}
	if err := uc.transfers.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List devuelve las últimas entradas del ledger.
func (uc *TransferUseCase) List(ctx context.Context, limit int) ([]entity.TransferLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.transfers.List(ctx, limit)
}
