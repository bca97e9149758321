package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de criticidad de un ítem (coinciden con el CHECK de inventory_daily).
const (
	CriticalityHigh   = "High"
	CriticalityMedium = "Medium"
	CriticalityLow    = "Low"
)

// InventorySnapshot es el registro diario de stock de un ítem en un centro:
// una fila por (fecha, centro, ítem). Lo produce el proceso de ingesta
// externo; el core solo lo lee. El invariante
// closing = opening + received - issued viene del upstream y esta capa
// no lo valida.
type InventorySnapshot struct {
	RecordID         string // UUID asignado en la ingesta
	Date             time.Time
	FacilityID       string
	ItemName         string
	Category         string // Maternal, Antibiotic, Vaccine, ...
	OpeningStock     decimal.Decimal
	ReceivedQty      decimal.Decimal
	IssuedQty        decimal.Decimal
	ClosingStock     decimal.Decimal
	LeadTimeDays     int
	CriticalityLevel string // ver constantes Criticality*
}

// Key identifica la fila conceptual (fecha, centro, ítem) en formato estable.
// Se usa como identidad de cambio en el detector de cambios.
func (s InventorySnapshot) Key() string {
	return s.Date.Format("2006-01-02") + "|" + s.FacilityID + "|" + s.ItemName
}
