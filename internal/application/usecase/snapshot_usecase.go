package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/swiftstock-api/internal/application/dto"
	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

// SnapshotUseCase es la puerta de entrada de la ingesta diaria: valida la
// fila, asigna el RecordID y la persiste. El almacén (o su adaptador) se
// encarga de registrar el cambio para el detector; este caso de uso no
// conoce el mecanismo de captura.
type SnapshotUseCase struct {
	repo repository.SnapshotRepository
}

// NewSnapshotUseCase construye el caso de uso de ingesta.
func NewSnapshotUseCase(repo repository.SnapshotRepository) *SnapshotUseCase {
	return &SnapshotUseCase{repo: repo}
}

// Ingest inserta o actualiza la fila diaria (fecha, centro, ítem).
// No valida el invariante closing = opening + received - issued: los datos
// sucios del upstream pasan tal cual y el motor los procesa como estén.
func (uc *SnapshotUseCase) Ingest(ctx context.Context, in dto.IngestSnapshotRequest) (*entity.InventorySnapshot, error) {
	if strings.TrimSpace(in.FacilityID) == "" || strings.TrimSpace(in.ItemName) == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	criticality := in.CriticalityLevel
	if criticality == "" {
		criticality = entity.CriticalityMedium
	}
	switch criticality {
	case entity.CriticalityHigh, entity.CriticalityMedium, entity.CriticalityLow:
	default:
		return nil, domain.ErrInvalidInput
	}

	s := &entity.InventorySnapshot{
		RecordID:         uuid.New().String(),
		Date:             date,
		FacilityID:       strings.TrimSpace(in.FacilityID),
		ItemName:         strings.TrimSpace(in.ItemName),
		Category:         in.Category,
		OpeningStock:     in.OpeningStock,
		ReceivedQty:      in.ReceivedQty,
		IssuedQty:        in.IssuedQty,
		ClosingStock:     in.ClosingStock,
		LeadTimeDays:     in.LeadTimeDays,
		CriticalityLevel: criticality,
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// List devuelve snapshots filtrados por centro y/o ítem (vacío = todos).
func (uc *SnapshotUseCase) List(ctx context.Context, facilityID, itemName string) ([]entity.InventorySnapshot, error) {
	return uc.repo.List(ctx, facilityID, itemName)
}
