package models

import "gorm.io/gorm"

// Ledger entry types.
const (
	LedgerCredit = "credit"
	LedgerDebit  = "debit"
)

// Ledger is one immutable financial event against a driver's account.
// Amounts are stored as non-negative cents; the type carries the sign.
// A driver's balance is never stored, it is always derived as
// sum(credits) - sum(debits).
type Ledger struct {
	gorm.Model
	DriverID    uint   `json:"driver_id" gorm:"index"`
	Type        string `json:"type"` // "credit" or "debit"
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description"`
}
