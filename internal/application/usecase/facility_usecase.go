package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/swiftstock-api/internal/application/dto"
	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
)

// FacilityUseCase gestiona los datos de referencia de centros.
type FacilityUseCase struct {
	repo repository.FacilityRepository
}

// NewFacilityUseCase construye el caso de uso.
func NewFacilityUseCase(repo repository.FacilityRepository) *FacilityUseCase {
	return &FacilityUseCase{repo: repo}
}

// Create registra un centro nuevo. FacilityID y Name son obligatorios.
func (uc *FacilityUseCase) Create(ctx context.Context, in dto.FacilityRequest) (*entity.Facility, error) {
	if strings.TrimSpace(in.FacilityID) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	f := &entity.Facility{
		FacilityID: strings.TrimSpace(in.FacilityID),
		Name:       strings.TrimSpace(in.Name),
		City:       in.City,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// List devuelve todos los centros de la red.
func (uc *FacilityUseCase) List(ctx context.Context) ([]entity.Facility, error) {
	return uc.repo.List(ctx)
}

// GetByID devuelve un centro o domain.ErrNotFound.
func (uc *FacilityUseCase) GetByID(ctx context.Context, facilityID string) (*entity.Facility, error) {
	return uc.repo.GetByID(ctx, facilityID)
}
