package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/swiftstock-api/internal/application/dto"
	"github.com/jhoicas/swiftstock-api/internal/application/usecase"
	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
)

// TransferHandler maneja el ledger de traslados (auditoría inerte).
type TransferHandler struct {
	uc *usecase.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *usecase.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un traslado en el ledger
// @Description  Solo auditoría: no mueve stock ni dispara recomputación.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.TransferDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	t, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "centro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toTransferDTO(*t))
}

// List godoc
// @Summary      Últimas entradas del ledger de traslados
// @Tags         transfers
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas (default 100)"
// @Success      200  {array}  dto.TransferDTO
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TransferDTO, 0, len(list))
	for _, t := range list {
		out = append(out, toTransferDTO(t))
	}
	return c.JSON(fiber.Map{"count": len(out), "data": out})
}

func toTransferDTO(t entity.TransferLog) dto.TransferDTO {
	return dto.TransferDTO{
		TransferID:     t.TransferID,
		ItemName:       t.ItemName,
		FromFacilityID: t.FromFacilityID,
		ToFacilityID:   t.ToFacilityID,
		Quantity:       t.Quantity,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
	}
}
