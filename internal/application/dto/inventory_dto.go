package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
)

// IngestSnapshotRequest body para POST /api/inventory/snapshots.
// Lo usa el proceso de ingesta externo; una petición = una fila diaria
// (fecha, centro, ítem). date en formato YYYY-MM-DD.
type IngestSnapshotRequest struct {
	Date             string          `json:"date"`
	FacilityID       string          `json:"facility_id"`
	ItemName         string          `json:"item_name"`
	Category         string          `json:"category,omitempty"`
	OpeningStock     decimal.Decimal `json:"opening_stock"`
	ReceivedQty      decimal.Decimal `json:"received_qty"`
	IssuedQty        decimal.Decimal `json:"issued_qty"`
	ClosingStock     decimal.Decimal `json:"closing_stock"`
	LeadTimeDays     int             `json:"lead_time_days"`
	CriticalityLevel string          `json:"criticality_level,omitempty"`
}

// SnapshotDTO una fila del almacén de snapshots (GET /api/inventory/snapshots).
type SnapshotDTO struct {
	RecordID         string          `json:"record_id"`
	Date             string          `json:"date"`
	FacilityID       string          `json:"facility_id"`
	ItemName         string          `json:"item_name"`
	Category         string          `json:"category"`
	OpeningStock     decimal.Decimal `json:"opening_stock"`
	ReceivedQty      decimal.Decimal `json:"received_qty"`
	IssuedQty        decimal.Decimal `json:"issued_qty"`
	ClosingStock     decimal.Decimal `json:"closing_stock"`
	LeadTimeDays     int             `json:"lead_time_days"`
	CriticalityLevel string          `json:"criticality_level"`
}

// FromSnapshot convierte la entidad al DTO de salida.
func FromSnapshot(s entity.InventorySnapshot) SnapshotDTO {
	return SnapshotDTO{
		RecordID:         s.RecordID,
		Date:             s.Date.Format("2006-01-02"),
		FacilityID:       s.FacilityID,
		ItemName:         s.ItemName,
		Category:         s.Category,
		OpeningStock:     s.OpeningStock,
		ReceivedQty:      s.ReceivedQty,
		IssuedQty:        s.IssuedQty,
		ClosingStock:     s.ClosingStock,
		LeadTimeDays:     s.LeadTimeDays,
		CriticalityLevel: s.CriticalityLevel,
	}
}

// FacilityRequest body para POST /api/facilities.
type FacilityRequest struct {
	FacilityID string  `json:"facility_id"`
	Name       string  `json:"name"`
	City       string  `json:"city,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// FacilityDTO una fila de centros (GET /api/facilities).
type FacilityDTO struct {
	FacilityID string    `json:"facility_id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
}

// TransferRequest body para POST /api/transfers (ledger de auditoría).
type TransferRequest struct {
	ItemName       string          `json:"item_name"`
	FromFacilityID string          `json:"from_facility_id"`
	ToFacilityID   string          `json:"to_facility_id"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// TransferDTO una fila del ledger de traslados.
type TransferDTO struct {
	TransferID     string          `json:"transfer_id"`
	ItemName       string          `json:"item_name"`
	FromFacilityID string          `json:"from_facility_id"`
	ToFacilityID   string          `json:"to_facility_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}
