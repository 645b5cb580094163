package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fmpay/fmpay_backend/internal/apperrors"
	"github.com/fmpay/fmpay_backend/internal/core/domain"
	portsrepo "github.com/fmpay/fmpay_backend/internal/core/ports/repositories"
	portssvc "github.com/fmpay/fmpay_backend/internal/core/ports/services"
	"github.com/fmpay/fmpay_backend/internal/dto"
	"github.com/fmpay/fmpay_backend/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// registeredDateLayout is the wire format for registration dates.
const registeredDateLayout = "2006-01-02"

// Per-item messages reported inline in batch results.
const (
	msgPaymentRecorded = "Payment recorded"
	msgFMIDNotFound    = "FMID not found"
	msgExceedsPending  = "Payment amount exceeds pending amount"
	msgNonPositive     = "Payment amount must be positive"
	msgFMIDRequired    = "FMID is required"
)

// ledgerService implements the LedgerSvcFacade interface.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates the ledger service backed by the given repository.
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: repo,
	}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RegisterEntry(ctx context.Context, req dto.RegisterLedgerEntryRequest) (*domain.LedgerEntry, error) {
	if strings.TrimSpace(req.FMID) == "" || strings.TrimSpace(req.IDNumber) == "" || req.Date == "" || req.PendingAmount == nil {
		return nil, fmt.Errorf("%w: FMID, IDNumber, date and pendingAmount are required", apperrors.ErrValidation)
	}

	registeredDate, err := time.Parse(registeredDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	// Negative opening balances are rejected; a zero balance is a valid
	// fully-paid registration.
	if req.PendingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: pendingAmount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.LedgerEntry{
		FMID:           strings.TrimSpace(req.FMID),
		IDNumber:       strings.TrimSpace(req.IDNumber),
		RegisteredDate: registeredDate,
		PendingAmount:  *req.PendingAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry",
			slog.String("fmid", entry.FMID))
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.LogInfo(ctx, "Ledger entry registered",
		slog.String("fmid", entry.FMID),
		slog.String("pending_amount", entry.PendingAmount.String()))
	return &entry, nil
}

func (s *ledgerService) ApplyPayments(ctx context.Context, payments []dto.PaymentItem) ([]dto.PaymentItemResult, error) {
	results := make([]dto.PaymentItemResult, 0, len(payments))

	for _, payment := range payments {
		result, err := s.applyPayment(ctx, payment)
		if err != nil {
			// Unexpected storage fault: the items already processed stay
			// committed (no batch atomicity), the request as a whole fails.
			return nil, err
		}
		metrics.PaymentsTotal.WithLabelValues(result.Status).Inc()
		results = append(results, result)
	}

	return results, nil
}

// applyPayment handles a single batch item. Business rejections come back
// as an error result, not an error.
func (s *ledgerService) applyPayment(ctx context.Context, payment dto.PaymentItem) (dto.PaymentItemResult, error) {
	if strings.TrimSpace(payment.FMID) == "" {
		return errorResult(payment.FMID, msgFMIDRequired), nil
	}
	if !payment.Amount.IsPositive() {
		s.LogDebug(ctx, "Rejected non-positive payment amount",
			slog.String("fmid", payment.FMID),
			slog.String("amount", payment.Amount.String()))
		return errorResult(payment.FMID, msgNonPositive), nil
	}

	now := time.Now()
	record := domain.PaymentRecord{
		PaymentRecordID:   uuid.NewString(),
		FMID:              payment.FMID,
		RecordedAt:        now,
		CustomerName:      fmt.Sprintf("Customer %d", now.UnixMilli()),
		Amount:            payment.Amount,
		AmountInWords:     payment.Amount.String(),
		TransactionNumber: "TXN-" + uuid.NewString(),
		PaymentMode:       domain.PaymentModeOnline,
		Remarks:           domain.PaymentRemarks,
	}

	entry, err := s.ledgerRepo.ApplyPayment(ctx, record)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return errorResult(payment.FMID, msgFMIDNotFound), nil
		case errors.Is(err, apperrors.ErrLimitExceeded):
			return errorResult(payment.FMID, msgExceedsPending), nil
		default:
			s.LogError(ctx, err, "Failed to apply payment",
				slog.String("fmid", payment.FMID),
				slog.String("amount", payment.Amount.String()))
			return dto.PaymentItemResult{}, err
		}
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("fmid", payment.FMID),
		slog.String("transaction_number", record.TransactionNumber),
		slog.String("new_pending_amount", entry.PendingAmount.String()))

	newPending := entry.PendingAmount
	return dto.PaymentItemResult{
		FMID:          payment.FMID,
		Status:        dto.PaymentStatusSuccess,
		Message:       msgPaymentRecorded,
		PendingAmount: &newPending,
	}, nil
}

func (s *ledgerService) GetPendingAmount(ctx context.Context, fmid string) (decimal.Decimal, error) {
	entry, err := s.ledgerRepo.FindEntryByFMID(ctx, fmid)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger entry",
				slog.String("fmid", fmid))
		}
		return decimal.Zero, err
	}
	return entry.PendingAmount, nil
}

func (s *ledgerService) ListPaymentRecords(ctx context.Context, fmid string) ([]domain.PaymentRecord, error) {
	// Distinguish "no payments yet" from "no such entry".
	if _, err := s.ledgerRepo.FindEntryByFMID(ctx, fmid); err != nil {
		return nil, err
	}

	records, err := s.ledgerRepo.ListPaymentRecords(ctx, fmid)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment records",
			slog.String("fmid", fmid))
		return nil, err
	}
	if records == nil {
		records = []domain.PaymentRecord{}
	}
	return records, nil
}

func errorResult(fmid, message string) dto.PaymentItemResult {
	return dto.PaymentItemResult{
		FMID:    fmid,
		Status:  dto.PaymentStatusError,
		Message: message,
	}
}
