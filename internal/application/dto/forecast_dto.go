package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
)

// ForecastRunResponse resultado terminal de POST /api/forecast/run.
type ForecastRunResponse struct {
	Message string `json:"message"`
}

// PendingChangesResponse respuesta de GET /api/forecast/changes.
type PendingChangesResponse struct {
	Pending bool `json:"pending"`
}

// ReorderAlertDTO una fila de la lista de reposición (GET /api/alerts).
type ReorderAlertDTO struct {
	FacilityID            string          `json:"facility_id"`
	ItemName              string          `json:"item_name"`
	ClosingStock          decimal.Decimal `json:"closing_stock"`
	AvgDailyUsage         decimal.Decimal `json:"avg_daily_usage"`
	PredictedStockoutDays int64           `json:"predicted_stockout_days"`
	Status                string          `json:"status"` // URGENT_REORDER | WARNING
	SuggestedReorderQty   decimal.Decimal `json:"suggested_reorder_qty"`
}

// AlertListResponse envuelve la lista de alertas con su marca de refresco,
// para que el cliente pueda juzgar la staleness contra el target lag.
type AlertListResponse struct {
	RefreshedAt time.Time         `json:"refreshed_at"`
	Count       int               `json:"count"`
	Data        []ReorderAlertDTO `json:"data"`
}

// FromAlert convierte la entidad de dominio al DTO de salida.
func FromAlert(a entity.ReorderAlert) ReorderAlertDTO {
	return ReorderAlertDTO{
		FacilityID:            a.FacilityID,
		ItemName:              a.ItemName,
		ClosingStock:          a.ClosingStock,
		AvgDailyUsage:         a.AvgDailyUsage,
		PredictedStockoutDays: a.PredictedStockoutDays,
		Status:                a.Status,
		SuggestedReorderQty:   a.SuggestedReorderQty,
	}
}
