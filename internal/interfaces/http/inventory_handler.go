package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/swiftstock-api/internal/application/dto"
	"github.com/jhoicas/swiftstock-api/internal/application/usecase"
	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
)

// InventoryHandler maneja la ingesta y consulta de snapshots diarios y los
// datos de referencia de centros.
type InventoryHandler struct {
	snapshots  *usecase.SnapshotUseCase
	facilities *usecase.FacilityUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(snapshots *usecase.SnapshotUseCase, facilities *usecase.FacilityUseCase) *InventoryHandler {
	return &InventoryHandler{snapshots: snapshots, facilities: facilities}
}

// IngestSnapshot godoc
// @Summary      Ingesta de una fila diaria de stock
// @Description  Upsert por (date, facility_id, item_name). La escritura queda
//	registrada para el detector de cambios; el siguiente ciclo del scheduler
//	recomputa el pronóstico.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.SnapshotDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/snapshots [post]
func (h *InventoryHandler) IngestSnapshot(c *fiber.Ctx) error {
	var in dto.IngestSnapshotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.snapshots.Ingest(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSnapshot(*s))
}

// ListSnapshots godoc
// @Summary      Consulta del almacén de snapshots
// @Tags         inventory
// @Produce      json
// @Param        facility_id  query  string  false  "Filtrar por centro"
// @Param        item_name    query  string  false  "Filtrar por ítem"
// @Success      200  {array}  dto.SnapshotDTO
// @Router       /api/inventory/snapshots [get]
func (h *InventoryHandler) ListSnapshots(c *fiber.Ctx) error {
	list, err := h.snapshots.List(c.Context(), c.Query("facility_id"), c.Query("item_name"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SnapshotDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.FromSnapshot(s))
	}
	return c.JSON(fiber.Map{"count": len(out), "data": out})
}

// CreateFacility godoc
// @Summary      Registrar un centro
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.FacilityDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/facilities [post]
func (h *InventoryHandler) CreateFacility(c *fiber.Ctx) error {
	var in dto.FacilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	f, err := h.facilities.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "facility_id y name son obligatorios"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el centro ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toFacilityDTO(*f))
}

// ListFacilities godoc
// @Summary      Centros de la red
// @Tags         facilities
// @Produce      json
// @Success      200  {array}  dto.FacilityDTO
// @Router       /api/facilities [get]
func (h *InventoryHandler) ListFacilities(c *fiber.Ctx) error {
	list, err := h.facilities.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.FacilityDTO, 0, len(list))
	for _, f := range list {
		out = append(out, toFacilityDTO(f))
	}
	return c.JSON(fiber.Map{"count": len(out), "data": out})
}

func toFacilityDTO(f entity.Facility) dto.FacilityDTO {
	return dto.FacilityDTO{
		FacilityID: f.FacilityID,
		Name:       f.Name,
		City:       f.City,
		Latitude:   f.Latitude,
		Longitude:  f.Longitude,
		CreatedAt:  f.CreatedAt,
	}
}
