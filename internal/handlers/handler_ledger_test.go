package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fmpay/fmpay_backend/internal/apperrors"
	"github.com/fmpay/fmpay_backend/internal/core/domain"
	portssvc "github.com/fmpay/fmpay_backend/internal/core/ports/services"
	"github.com/fmpay/fmpay_backend/internal/dto"
	"github.com/fmpay/fmpay_backend/internal/handlers"
	"github.com/fmpay/fmpay_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLedgerService is a mock type for the LedgerSvcFacade interface
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RegisterEntry(ctx context.Context, req dto.RegisterLedgerEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ApplyPayments(ctx context.Context, payments []dto.PaymentItem) ([]dto.PaymentItemResult, error) {
	args := m.Called(ctx, payments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PaymentItemResult), args.Error(1)
}

func (m *MockLedgerService) GetPendingAmount(ctx context.Context, fmid string) (decimal.Decimal, error) {
	args := m.Called(ctx, fmid)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) ListPaymentRecords(ctx context.Context, fmid string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, fmid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockLedgerService
}

func (suite *LedgerHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidations()
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockLedgerService)
	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{Ledger: suite.mockService})
}

func (suite *LedgerHandlerTestSuite) performRequest(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- POST /payment-records ---

func (suite *LedgerHandlerTestSuite) TestRegisterEntry_Success() {
	entry := &domain.LedgerEntry{
		FMID:           "FM123",
		IDNumber:       "ID-001",
		RegisteredDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		PendingAmount:  decimal.NewFromInt(1000),
	}
	suite.mockService.On("RegisterEntry", mock.Anything, mock.AnythingOfType("dto.RegisterLedgerEntryRequest")).
		Return(entry, nil).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records",
		`{"FMID":"FM123","IDNumber":"ID-001","date":"2026-01-15","pendingAmount":1000}`)

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("FMID registered successfully", body["message"])
	fm, ok := body["fm"].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("FM123", fm["FMID"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRegisterEntry_MissingFields() {
	w := suite.performRequest(http.MethodPost, "/payment-records",
		`{"FMID":"FM123","date":"2026-01-15"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("Missing required fields", body["error"])
	suite.mockService.AssertNotCalled(suite.T(), "RegisterEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestRegisterEntry_NegativeOpeningBalance() {
	w := suite.performRequest(http.MethodPost, "/payment-records",
		`{"FMID":"FM123","IDNumber":"ID-001","date":"2026-01-15","pendingAmount":-100}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "RegisterEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestRegisterEntry_MalformedBody() {
	w := suite.performRequest(http.MethodPost, "/payment-records", `{not json`)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("Missing required fields", body["error"])
	suite.mockService.AssertNotCalled(suite.T(), "RegisterEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestRegisterEntry_Duplicate() {
	suite.mockService.On("RegisterEntry", mock.Anything, mock.AnythingOfType("dto.RegisterLedgerEntryRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records",
		`{"FMID":"FM123","IDNumber":"ID-001","date":"2026-01-15","pendingAmount":1000}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("FMID already exists", body["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRegisterEntry_ServiceError() {
	suite.mockService.On("RegisterEntry", mock.Anything, mock.AnythingOfType("dto.RegisterLedgerEntryRequest")).
		Return(nil, assert.AnError).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records",
		`{"FMID":"FM123","IDNumber":"ID-001","date":"2026-01-15","pendingAmount":1000}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("Internal server error", body["error"])
	suite.mockService.AssertExpectations(suite.T())
}

// --- POST /payment-records/multiple ---

func (suite *LedgerHandlerTestSuite) TestApplyPayments_MixedResults() {
	pending := decimal.NewFromInt(200)
	results := []dto.PaymentItemResult{
		{FMID: "FM123", Status: dto.PaymentStatusSuccess, Message: "Payment recorded", PendingAmount: &pending},
		{FMID: "FM404", Status: dto.PaymentStatusError, Message: "FMID not found"},
	}
	suite.mockService.On("ApplyPayments", mock.Anything, mock.AnythingOfType("[]dto.PaymentItem")).
		Return(results, nil).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records/multiple",
		`{"payments":[{"FMID":"FM123","amount":300},{"FMID":"FM404","amount":100}]}`)

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decodeBody(w)
	got, ok := body["results"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(got, 2)

	first := got[0].(map[string]any)
	suite.Equal("FM123", first["FMID"])
	suite.Equal("success", first["status"])
	suite.NotNil(first["pendingAmount"])

	second := got[1].(map[string]any)
	suite.Equal("FM404", second["FMID"])
	suite.Equal("error", second["status"])
	_, hasPending := second["pendingAmount"]
	suite.False(hasPending)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestApplyPayments_AllItemsFailedStill201() {
	results := []dto.PaymentItemResult{
		{FMID: "FM404", Status: dto.PaymentStatusError, Message: "FMID not found"},
	}
	suite.mockService.On("ApplyPayments", mock.Anything, mock.AnythingOfType("[]dto.PaymentItem")).
		Return(results, nil).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records/multiple",
		`{"payments":[{"FMID":"FM404","amount":100}]}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestApplyPayments_MalformedBody() {
	w := suite.performRequest(http.MethodPost, "/payment-records/multiple", `{"payments":"nope"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ApplyPayments", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestApplyPayments_MissingPayments() {
	w := suite.performRequest(http.MethodPost, "/payment-records/multiple", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ApplyPayments", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestApplyPayments_ServiceError() {
	suite.mockService.On("ApplyPayments", mock.Anything, mock.AnythingOfType("[]dto.PaymentItem")).
		Return(nil, assert.AnError).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records/multiple",
		`{"payments":[{"FMID":"FM123","amount":300}]}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("Internal server error", body["error"])
	suite.mockService.AssertExpectations(suite.T())
}

// --- POST /payment-records/pending-amount ---

func (suite *LedgerHandlerTestSuite) TestGetPendingAmount_Success() {
	suite.mockService.On("GetPendingAmount", mock.Anything, "FM123").
		Return(decimal.NewFromInt(500), nil).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records/pending-amount", `{"FMID":"FM123"}`)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("FM123", body["FMID"])
	suite.NotNil(body["pendingAmount"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetPendingAmount_MissingFMID() {
	w := suite.performRequest(http.MethodPost, "/payment-records/pending-amount", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("FMID is required", body["error"])
	suite.mockService.AssertNotCalled(suite.T(), "GetPendingAmount", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetPendingAmount_NotFound() {
	suite.mockService.On("GetPendingAmount", mock.Anything, "FM404").
		Return(decimal.Zero, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records/pending-amount", `{"FMID":"FM404"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("FMID not found", body["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetPendingAmount_ServiceError() {
	suite.mockService.On("GetPendingAmount", mock.Anything, "FM123").
		Return(decimal.Zero, assert.AnError).Once()

	w := suite.performRequest(http.MethodPost, "/payment-records/pending-amount", `{"FMID":"FM123"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// --- GET /payment-records/:fmid/payments ---

func (suite *LedgerHandlerTestSuite) TestListPaymentRecords_Success() {
	records := []domain.PaymentRecord{
		{PaymentRecordID: "pr-1", FMID: "FM123", Amount: decimal.NewFromInt(300), TransactionNumber: "TXN-abc"},
	}
	suite.mockService.On("ListPaymentRecords", mock.Anything, "FM123").
		Return(records, nil).Once()

	w := suite.performRequest(http.MethodGet, "/payment-records/FM123/payments", "")

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	payments, ok := body["payments"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(payments, 1)
	first := payments[0].(map[string]any)
	suite.Equal("pr-1", first["paymentRecordID"])
	suite.Equal("TXN-abc", first["transactionNumber"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListPaymentRecords_NotFound() {
	suite.mockService.On("ListPaymentRecords", mock.Anything, "FM404").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/payment-records/FM404/payments", "")

	suite.Equal(http.StatusNotFound, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("FMID not found", body["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListPaymentRecords_Empty() {
	suite.mockService.On("ListPaymentRecords", mock.Anything, "FM123").
		Return([]domain.PaymentRecord{}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/payment-records/FM123/payments", "")

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	payments, ok := body["payments"].([]any)
	suite.Require().True(ok)
	suite.Empty(payments)
	suite.mockService.AssertExpectations(suite.T())
}

// --- GET /health ---

func (suite *LedgerHandlerTestSuite) TestHealthCheck() {
	w := suite.performRequest(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
