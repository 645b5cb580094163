package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents one payable obligation tracked by the system.
// The FMID is assigned externally and immutable once registered; only
// PendingAmount changes afterwards, and only through payment application.
type LedgerEntry struct {
	FMID           string          `json:"FMID"`          // Primary key, externally assigned
	IDNumber       string          `json:"IDNumber"`      // Opaque reference to the payer
	RegisteredDate time.Time       `json:"date"`          // Supplied at registration
	PendingAmount  decimal.Decimal `json:"pendingAmount"` // Outstanding balance, never negative
	AuditFields
}
