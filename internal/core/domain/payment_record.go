package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed descriptive tags stamped on every payment record.
const (
	PaymentModeOnline = "Online"
	PaymentRemarks    = "Payment processed"
)

// PaymentRecord is the immutable history entry created each time a
// payment is successfully applied against a ledger entry.
type PaymentRecord struct {
	PaymentRecordID   string          `json:"paymentRecordID"`
	FMID              string          `json:"FMID"`     // FK -> ledger_entries.fmid
	IDNumber          string          `json:"IDNumber"` // Copied from the entry at payment time
	RecordedAt        time.Time       `json:"recordedAt"`
	CustomerName      string          `json:"customerName"`
	Amount            decimal.Decimal `json:"amount"`
	AmountInWords     string          `json:"amountInWords"`
	PendingAmount     decimal.Decimal `json:"pendingAmount"` // Entry balance immediately after this payment
	TransactionNumber string          `json:"transactionNumber"`
	PaymentMode       string          `json:"paymentMode"`
	Remarks           string          `json:"remarks"`
}
