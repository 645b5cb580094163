package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fmpay/fmpay_backend/internal/apperrors"
	"github.com/fmpay/fmpay_backend/internal/core/domain"
	portsrepo "github.com/fmpay/fmpay_backend/internal/core/ports/repositories"
	"github.com/fmpay/fmpay_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry and payment record data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// Helper to convert models.LedgerEntry from DB to domain.LedgerEntry
func toDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		FMID:           m.FMID,
		IDNumber:       m.IDNumber,
		RegisteredDate: m.RegisteredDate,
		PendingAmount:  m.PendingAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// Helper to convert models.PaymentRecord from DB to domain.PaymentRecord
func toDomainPaymentRecord(m models.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentRecordID:   m.PaymentRecordID,
		FMID:              m.FMID,
		IDNumber:          m.IDNumber,
		RecordedAt:        m.RecordedAt,
		CustomerName:      m.CustomerName,
		Amount:            m.Amount,
		AmountInWords:     m.AmountInWords,
		PendingAmount:     m.PendingAmount,
		TransactionNumber: m.TransactionNumber,
		PaymentMode:       m.PaymentMode,
		Remarks:           m.Remarks,
	}
}

// SaveEntry inserts a new ledger entry.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (fmid, id_number, registered_date, pending_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.FMID,
		entry.IDNumber,
		entry.RegisteredDate,
		entry.PendingAmount,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: FMID %s already exists", apperrors.ErrDuplicate, entry.FMID)
			}
		}
		return fmt.Errorf("failed to save ledger entry %s: %w", entry.FMID, err)
	}
	return nil
}

// FindEntryByFMID retrieves a ledger entry by its FMID.
func (r *PgxLedgerRepository) FindEntryByFMID(ctx context.Context, fmid string) (*domain.LedgerEntry, error) {
	query := `
		SELECT fmid, id_number, registered_date, pending_amount, created_at, last_updated_at
		FROM ledger_entries
		WHERE fmid = $1;
	`
	var modelEntry models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, fmid).Scan(
		&modelEntry.FMID,
		&modelEntry.IDNumber,
		&modelEntry.RegisteredDate,
		&modelEntry.PendingAmount,
		&modelEntry.CreatedAt,
		&modelEntry.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by FMID %s: %w", fmid, err)
	}

	domainEntry := toDomainLedgerEntry(modelEntry)
	return &domainEntry, nil
}

// ApplyPayment decrements the entry's pending amount and inserts the
// payment record within a single database transaction. The balance check
// is part of the UPDATE predicate, so two concurrent payments against the
// same FMID can never drive the balance negative: the second one simply
// matches no row and is rejected.
func (r *PgxLedgerRepository) ApplyPayment(ctx context.Context, record domain.PaymentRecord) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE ledger_entries
		SET pending_amount = pending_amount - $2, last_updated_at = $3
		WHERE fmid = $1 AND pending_amount >= $2
		RETURNING id_number, registered_date, pending_amount, created_at, last_updated_at;
	`
	var modelEntry models.LedgerEntry
	modelEntry.FMID = record.FMID
	err = tx.QueryRow(ctx, updateQuery, record.FMID, record.Amount, record.RecordedAt).Scan(
		&modelEntry.IDNumber,
		&modelEntry.RegisteredDate,
		&modelEntry.PendingAmount,
		&modelEntry.CreatedAt,
		&modelEntry.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The guarded update matched nothing: either the entry does not
			// exist or the amount exceeds its balance. Check which.
			var exists bool
			existsErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE fmid = $1)`, record.FMID).Scan(&exists)
			if existsErr != nil {
				return nil, fmt.Errorf("failed to check ledger entry %s after rejected payment: %w", record.FMID, existsErr)
			}
			if !exists {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("%w: FMID %s", apperrors.ErrLimitExceeded, record.FMID)
		}
		return nil, fmt.Errorf("failed to update pending amount for FMID %s: %w", record.FMID, err)
	}

	// Complete the record from the updated row before inserting it.
	record.IDNumber = modelEntry.IDNumber
	record.PendingAmount = modelEntry.PendingAmount

	insertQuery := `
		INSERT INTO payment_records (payment_record_id, fmid, id_number, recorded_at, customer_name, amount, amount_in_words, pending_amount, transaction_number, payment_mode, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		record.PaymentRecordID,
		record.FMID,
		record.IDNumber,
		record.RecordedAt,
		record.CustomerName,
		record.Amount,
		record.AmountInWords,
		record.PendingAmount,
		record.TransactionNumber,
		record.PaymentMode,
		record.Remarks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment record for FMID %s: %w", record.FMID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainEntry := toDomainLedgerEntry(modelEntry)
	return &domainEntry, nil
}

// ListPaymentRecords retrieves all payment records for one entry, oldest first.
func (r *PgxLedgerRepository) ListPaymentRecords(ctx context.Context, fmid string) ([]domain.PaymentRecord, error) {
	query := `
		SELECT payment_record_id, fmid, id_number, recorded_at, customer_name, amount, amount_in_words, pending_amount, transaction_number, payment_mode, remarks
		FROM payment_records
		WHERE fmid = $1
		ORDER BY recorded_at;
	`
	rows, err := r.Pool.Query(ctx, query, fmid)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment records for FMID %s: %w", fmid, err)
	}
	defer rows.Close()

	records := []domain.PaymentRecord{}
	for rows.Next() {
		var m models.PaymentRecord
		err := rows.Scan(
			&m.PaymentRecordID,
			&m.FMID,
			&m.IDNumber,
			&m.RecordedAt,
			&m.CustomerName,
			&m.Amount,
			&m.AmountInWords,
			&m.PendingAmount,
			&m.TransactionNumber,
			&m.PaymentMode,
			&m.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment record row for FMID %s: %w", fmid, err)
		}
		records = append(records, toDomainPaymentRecord(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment record rows for FMID %s: %w", fmid, err)
	}

	return records, nil
}
