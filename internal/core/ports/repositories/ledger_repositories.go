package repositories

import (
	"context"

	"github.com/fmpay/fmpay_backend/internal/core/domain"
)

// LedgerReader defines read operations for ledger data.
type LedgerReader interface {
	// FindEntryByFMID retrieves a ledger entry by its externally assigned FMID.
	FindEntryByFMID(ctx context.Context, fmid string) (*domain.LedgerEntry, error)

	// ListPaymentRecords retrieves the payment history for one entry,
	// ordered by recording time.
	ListPaymentRecords(ctx context.Context, fmid string) ([]domain.PaymentRecord, error)
}

// LedgerWriter defines write operations for ledger data.
type LedgerWriter interface {
	// SaveEntry persists a newly registered ledger entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// ApplyPayment atomically decrements the entry's pending amount and
	// creates the payment record inside a single database transaction.
	// The record arrives with FMID, Amount and the generated identifiers
	// set; the repository fills IDNumber and the resulting PendingAmount
	// snapshot from the locked row. Returns the updated entry.
	// Fails with apperrors.ErrNotFound for an unknown FMID and
	// apperrors.ErrLimitExceeded when the amount exceeds the balance.
	ApplyPayment(ctx context.Context, record domain.PaymentRecord) (*domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// RepositoryProvider bundles the concrete repositories handed to the
// service container at startup.
type RepositoryProvider struct {
	LedgerRepo LedgerRepositoryFacade
}
