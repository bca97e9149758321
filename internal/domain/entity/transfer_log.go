package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ledger de traslados.
const (
	TransferPending   = "PENDING"
	TransferCompleted = "COMPLETED"
)

// TransferLog es el ledger de traslados entre centros. Es una tabla de
// auditoría inerte: el core no la procesa, solo la persiste de forma
// consistente con las claves foráneas de facilities.
type TransferLog struct {
	TransferID     string // UUID
	ItemName       string
	FromFacilityID string
	ToFacilityID   string
	Quantity       decimal.Decimal
	Status         string // ver constantes Transfer*
	CreatedAt      time.Time
}
