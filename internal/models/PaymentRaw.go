package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentRaw is an ingested payment record awaiting matching. The
// ingestion and reconciliation pipeline that will populate and consume
// these lives outside this service; only a stub listing exists here.
type PaymentRaw struct {
	gorm.Model
	Source      string         `json:"source"`
	AmountCents int64          `json:"amount_cents"`
	Payload     datatypes.JSON `json:"payload"`
	Matched     bool           `json:"matched"`
}
