package services

import (
	"context"

	"github.com/fmpay/fmpay_backend/internal/core/domain"
	"github.com/fmpay/fmpay_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade exposes registration, payment application and balance
// queries to the HTTP boundary.
type LedgerSvcFacade interface {
	// RegisterEntry creates a new ledger entry for an FMID.
	// Fails with apperrors.ErrValidation for missing/malformed fields and
	// apperrors.ErrDuplicate when the FMID is already registered.
	RegisterEntry(ctx context.Context, req dto.RegisterLedgerEntryRequest) (*domain.LedgerEntry, error)

	// ApplyPayments processes a batch strictly in input order. Items are
	// independent: a rejected item is reported inline and never aborts the
	// rest of the batch, so the returned slice matches the input 1:1.
	// Only an unexpected storage/runtime fault returns a non-nil error.
	ApplyPayments(ctx context.Context, payments []dto.PaymentItem) ([]dto.PaymentItemResult, error)

	// GetPendingAmount returns the current outstanding balance for an FMID.
	GetPendingAmount(ctx context.Context, fmid string) (decimal.Decimal, error)

	// ListPaymentRecords returns the payment history for an FMID, oldest first.
	ListPaymentRecords(ctx context.Context, fmid string) ([]domain.PaymentRecord, error)
}

// ServiceContainer holds all services, injected into route registration.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
}
