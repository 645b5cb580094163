package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the ledger_entries table.
type LedgerEntry struct {
	FMID           string          `db:"fmid"`
	IDNumber       string          `db:"id_number"`
	RegisteredDate time.Time       `db:"registered_date"`
	PendingAmount  decimal.Decimal `db:"pending_amount"`
	CreatedAt      time.Time       `db:"created_at"`
	LastUpdatedAt  time.Time       `db:"last_updated_at"`
}

// PaymentRecord mirrors the payment_records table.
type PaymentRecord struct {
	PaymentRecordID   string          `db:"payment_record_id"`
	FMID              string          `db:"fmid"`
	IDNumber          string          `db:"id_number"`
	RecordedAt        time.Time       `db:"recorded_at"`
	CustomerName      string          `db:"customer_name"`
	Amount            decimal.Decimal `db:"amount"`
	AmountInWords     string          `db:"amount_in_words"`
	PendingAmount     decimal.Decimal `db:"pending_amount"`
	TransactionNumber string          `db:"transaction_number"`
	PaymentMode       string          `db:"payment_mode"`
	Remarks           string          `db:"remarks"`
}
