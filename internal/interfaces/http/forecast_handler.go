package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/swiftstock-api/internal/application/dto"
	"github.com/jhoicas/swiftstock-api/internal/application/forecast"
)

// ForecastHandler maneja la superficie de invocación del motor de pronóstico
// y la lectura de la vista de alertas.
type ForecastHandler struct {
	uc       *forecast.UseCase
	detector forecast.ChangeDetector
	alerts   *forecast.AlertView
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.UseCase, detector forecast.ChangeDetector, alerts *forecast.AlertView) *ForecastHandler {
	return &ForecastHandler{uc: uc, detector: detector, alerts: alerts}
}

// Run godoc
// @Summary      Corrida manual del motor de pronóstico
// @Description  Lee el almacén completo y reemplaza el dataset predicho.
//	Siempre devuelve un mensaje terminal; con fallo, el dataset anterior
//	queda intacto.
// @Tags         forecast
// @Produce      json
// @Success      200  {object}  dto.ForecastRunResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/forecast/run [post]
func (h *ForecastHandler) Run(c *fiber.Ctx) error {
	msg, err := h.uc.PredictDemand(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "FORECAST_FAILED", Message: msg})
	}
	return c.JSON(dto.ForecastRunResponse{Message: msg})
}

// PendingChanges godoc
// @Summary      Predicado de cambios pendientes
// @Tags         forecast
// @Produce      json
// @Success      200  {object}  dto.PendingChangesResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/forecast/changes [get]
func (h *ForecastHandler) PendingChanges(c *fiber.Ctx) error {
	pending, err := h.detector.HasPendingChanges(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PendingChangesResponse{Pending: pending})
}

// Alerts godoc
// @Summary      Lista de reposición
// @Description  Proyección cacheada sobre el dataset predicho: solo filas
//	URGENT_REORDER y WARNING, ordenadas por horizonte de quiebre ascendente.
//	refreshed_at permite juzgar la staleness contra el target lag.
// @Tags         forecast
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *ForecastHandler) Alerts(c *fiber.Ctx) error {
	alerts, refreshedAt := h.alerts.Alerts()
	out := make([]dto.ReorderAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.FromAlert(a))
	}
	return c.JSON(dto.AlertListResponse{
		RefreshedAt: refreshedAt,
		Count:       len(out),
		Data:        out,
	})
}
