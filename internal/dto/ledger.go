package dto

import (
	"time"

	"github.com/fmpay/fmpay_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterLedgerEntryRequest defines the data needed to register a new FMID.
// PendingAmount is a pointer so a missing field is distinguishable from a
// zero opening balance, which is a valid fully-paid registration; the
// service rejects nil. The gte tag applies to the decimal value through
// the custom type func registered in handlers, and omitempty keeps it from
// failing the zero balance.
type RegisterLedgerEntryRequest struct {
	FMID          string           `json:"FMID" binding:"required"`
	IDNumber      string           `json:"IDNumber" binding:"required"`
	Date          string           `json:"date" binding:"required,datetime=2006-01-02"`
	PendingAmount *decimal.Decimal `json:"pendingAmount" binding:"omitempty,gte=0"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	FMID          string          `json:"FMID"`
	IDNumber      string          `json:"IDNumber"`
	Date          time.Time       `json:"date"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RegisterLedgerEntryResponse wraps the created entry the way the API
// has always reported it.
type RegisterLedgerEntryResponse struct {
	Message string              `json:"message"`
	FM      LedgerEntryResponse `json:"fm"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		FMID:          e.FMID,
		IDNumber:      e.IDNumber,
		Date:          e.RegisteredDate,
		PendingAmount: e.PendingAmount,
		CreatedAt:     e.CreatedAt,
	}
}

// PendingAmountRequest identifies the entry whose balance is queried.
type PendingAmountRequest struct {
	FMID string `json:"FMID" binding:"required"`
}

// PendingAmountResponse reports the current outstanding balance for an FMID.
type PendingAmountResponse struct {
	FMID          string          `json:"FMID"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}
