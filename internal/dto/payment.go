package dto

import (
	"time"

	"github.com/fmpay/fmpay_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Per-item result statuses for batch payment application.
const (
	PaymentStatusSuccess = "success"
	PaymentStatusError   = "error"
)

// PaymentItem is one (FMID, amount) pair inside a batch.
type PaymentItem struct {
	FMID   string          `json:"FMID" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// ApplyPaymentsRequest carries an ordered batch of payments.
type ApplyPaymentsRequest struct {
	Payments []PaymentItem `json:"payments" binding:"required,dive"`
}

// PaymentItemResult is the outcome for one batch item, in input order.
// PendingAmount is only present on success.
type PaymentItemResult struct {
	FMID          string           `json:"FMID"`
	Status        string           `json:"status"`
	Message       string           `json:"message"`
	PendingAmount *decimal.Decimal `json:"pendingAmount,omitempty"`
}

// ApplyPaymentsResponse wraps the per-item results; the batch itself
// succeeds even when every item failed.
type ApplyPaymentsResponse struct {
	Results []PaymentItemResult `json:"results"`
}

// PaymentRecordResponse defines the data returned for one payment record.
type PaymentRecordResponse struct {
	PaymentRecordID   string          `json:"paymentRecordID"`
	FMID              string          `json:"FMID"`
	IDNumber          string          `json:"IDNumber"`
	RecordedAt        time.Time       `json:"recordedAt"`
	CustomerName      string          `json:"customerName"`
	Amount            decimal.Decimal `json:"amount"`
	AmountInWords     string          `json:"amountInWords"`
	PendingAmount     decimal.Decimal `json:"pendingAmount"`
	TransactionNumber string          `json:"transactionNumber"`
	PaymentMode       string          `json:"paymentMode"`
	Remarks           string          `json:"remarks"`
}

// ListPaymentRecordsResponse wraps the payment history of one entry.
type ListPaymentRecordsResponse struct {
	Payments []PaymentRecordResponse `json:"payments"`
}

// ToPaymentRecordResponse converts a domain.PaymentRecord to its DTO.
func ToPaymentRecordResponse(r *domain.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentRecordID:   r.PaymentRecordID,
		FMID:              r.FMID,
		IDNumber:          r.IDNumber,
		RecordedAt:        r.RecordedAt,
		CustomerName:      r.CustomerName,
		Amount:            r.Amount,
		AmountInWords:     r.AmountInWords,
		PendingAmount:     r.PendingAmount,
		TransactionNumber: r.TransactionNumber,
		PaymentMode:       r.PaymentMode,
		Remarks:           r.Remarks,
	}
}

// ToListPaymentRecordsResponse converts a slice of domain records.
func ToListPaymentRecordsResponse(records []domain.PaymentRecord) ListPaymentRecordsResponse {
	res := make([]PaymentRecordResponse, len(records))
	for i, r := range records {
		res[i] = ToPaymentRecordResponse(&r)
	}
	return ListPaymentRecordsResponse{Payments: res}
}
