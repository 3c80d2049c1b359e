package models

import "gorm.io/gorm"

// Billing types for a driver. Flat drivers pay a fixed weekly rate,
// per-unit drivers are billed by load.
const (
	BillingFlat    = "flat"
	BillingPerUnit = "per_unit"
)

type Driver struct {
	gorm.Model
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BillingType      string `json:"billing_type"`
	BillingRateCents int64  `json:"billing_rate_cents"` // fixed-point, cents
	BillingActive    bool   `json:"billing_active"`

	Aliases []Alias  `gorm:"foreignKey:DriverID" json:"aliases,omitempty"`
	Ledger  []Ledger `gorm:"foreignKey:DriverID" json:"ledger,omitempty"`
}
