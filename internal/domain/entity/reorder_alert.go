package entity

import "github.com/shopspring/decimal"

// Estados de una fila del dataset predicho. Solo URGENT_REORDER y WARNING
// aparecen en la superficie de alertas; OK se filtra (no se elimina del
// dataset predicho).
const (
	StatusUrgentReorder = "URGENT_REORDER"
	StatusWarning       = "WARNING"
	StatusOK            = "OK"
)

// ReorderAlert es una fila de la vista de reposición: proyección de solo
// lectura sobre el dataset predicho, clave (centro, ítem). La vista se
// recalcula en background con una staleness máxima configurada (target lag).
type ReorderAlert struct {
	FacilityID            string
	ItemName              string
	ClosingStock          decimal.Decimal
	AvgDailyUsage         decimal.Decimal
	PredictedStockoutDays int64
	Status                string // URGENT_REORDER | WARNING
	SuggestedReorderQty   decimal.Decimal
}
