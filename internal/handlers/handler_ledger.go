package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fmpay/fmpay_backend/internal/apperrors"
	portssvc "github.com/fmpay/fmpay_backend/internal/core/ports/services"
	"github.com/fmpay/fmpay_backend/internal/dto"
	"github.com/fmpay/fmpay_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledger entries and payments.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to ledger entries and payments.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	records := rg.Group("/payment-records")
	{
		records.POST("", h.registerEntry)
		records.POST("/multiple", h.applyPayments)
		records.POST("/pending-amount", h.getPendingAmount)
		records.GET("/:fmid/payments", h.listPaymentRecords)
	}
}

// registerEntry godoc
// @Summary Register a new FMID
// @Description Creates a ledger entry for an FMID with its opening pending amount
// @Tags payment-records
// @Accept  json
// @Produce  json
// @Param   entry body dto.RegisterLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.RegisterLedgerEntryResponse
// @Failure 400 {object} map[string]string "Missing fields, invalid values or duplicate FMID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /payment-records [post]
func (h *ledgerHandler) registerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	logger.Info("Received request to register FMID", slog.String("fmid", req.FMID))

	entry, err := h.ledgerService.RegisterEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error registering FMID", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate FMID registration", slog.String("fmid", req.FMID))
			c.JSON(http.StatusBadRequest, gin.H{"error": "FMID already exists"})
		} else {
			logger.Error("Failed to register FMID in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	logger.Info("FMID registered successfully", slog.String("fmid", entry.FMID))
	c.JSON(http.StatusCreated, dto.RegisterLedgerEntryResponse{
		Message: "FMID registered successfully",
		FM:      dto.ToLedgerEntryResponse(entry),
	})
}

// applyPayments godoc
// @Summary Apply a batch of payments
// @Description Applies each (FMID, amount) pair independently, in input order; per-item failures are reported inline
// @Tags payment-records
// @Accept  json
// @Produce  json
// @Param   payments body dto.ApplyPaymentsRequest true "Ordered payment batch"
// @Success 201 {object} dto.ApplyPaymentsResponse
// @Failure 400 {object} map[string]string "Malformed request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /payment-records/multiple [post]
func (h *ledgerHandler) applyPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received payment batch", slog.Int("count", len(req.Payments)))

	results, err := h.ledgerService.ApplyPayments(c.Request.Context(), req.Payments)
	if err != nil {
		logger.Error("Failed to process payment batch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// 201 even when every item failed: the batch was processed, the
	// per-item statuses carry the outcomes.
	c.JSON(http.StatusCreated, dto.ApplyPaymentsResponse{Results: results})
}

// getPendingAmount godoc
// @Summary Get the pending amount for an FMID
// @Description Returns the current outstanding balance for a registered FMID
// @Tags payment-records
// @Accept  json
// @Produce  json
// @Param   query body dto.PendingAmountRequest true "FMID to look up"
// @Success 200 {object} dto.PendingAmountResponse
// @Failure 400 {object} map[string]string "Missing FMID"
// @Failure 404 {object} map[string]string "FMID not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /payment-records/pending-amount [post]
func (h *ledgerHandler) getPendingAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PendingAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GetPendingAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "FMID is required"})
		return
	}

	pending, err := h.ledgerService.GetPendingAmount(c.Request.Context(), req.FMID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("FMID not found for pending amount lookup", slog.String("fmid", req.FMID))
			c.JSON(http.StatusNotFound, gin.H{"error": "FMID not found"})
		} else {
			logger.Error("Failed to get pending amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PendingAmountResponse{FMID: req.FMID, PendingAmount: pending})
}

// listPaymentRecords godoc
// @Summary List payment records for an FMID
// @Description Returns the payment history of a ledger entry, oldest first
// @Tags payment-records
// @Produce  json
// @Param   fmid path string true "FMID"
// @Success 200 {object} dto.ListPaymentRecordsResponse
// @Failure 404 {object} map[string]string "FMID not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /payment-records/{fmid}/payments [get]
func (h *ledgerHandler) listPaymentRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fmid := c.Param("fmid")

	records, err := h.ledgerService.ListPaymentRecords(c.Request.Context(), fmid)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("FMID not found for payment history", slog.String("fmid", fmid))
			c.JSON(http.StatusNotFound, gin.H{"error": "FMID not found"})
		} else {
			logger.Error("Failed to list payment records", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentRecordsResponse(records))
}
