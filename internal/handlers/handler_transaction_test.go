package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/SscSPs/finance_assistant_app/internal/handlers"
	"github.com/SscSPs/finance_assistant_app/internal/middleware"
	"github.com/SscSPs/finance_assistant_app/internal/utils"
	"github.com/SscSPs/finance_assistant_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testIssuer    = "finance-test"
)

// envelope mirrors both response shapes so tests can decode either.
type envelope struct {
	Error      bool            `json:"error"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to unmarshal response body %q: %v", w.Body.String(), err)
	}
	return env
}

func testToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, testIssuer, time.Now())
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func newAuthedRequest(t *testing.T, method, url string, body any, userID string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+testToken(t, userID))
	}
	return req
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	mockSummaryService     *MockSummaryService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockSummaryService = new(MockSummaryService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, testIssuer))
	handlers.RegisterTransactionRoutes(v1, suite.mockTransactionService, suite.mockSummaryService)
}

func (suite *TransactionHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleTransaction(id, owner string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: id,
		OwnerID:       owner,
		Title:         "Rent payment",
		Category:      domain.CategoryRent,
		Type:          domain.Expense,
		Amount:        decimal.RequireFromString("1200.50"),
		Date:          time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:        domain.StatusCompleted,
	}
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	body := map[string]any{
		"title":    "Rent payment",
		"category": "RENT",
		"type":     "Expense",
		"amount":   "1200.50",
		"status":   "Completed",
	}
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, "user-1", mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.Title == "Rent payment" && r.Amount != nil && r.Amount.Equal(decimal.RequireFromString("1200.50")) && r.Date == nil
	})).Return(sampleTransaction("t1", "user-1"), nil).Once()

	w := suite.serve(newAuthedRequest(suite.T(), http.MethodPost, "/api/v1/transactions", body, "user-1"))

	suite.Equal(http.StatusCreated, w.Code)
	env := decodeEnvelope(suite.T(), w)
	suite.False(env.Error)
	suite.Equal("Transaction created successfully", env.Message)

	var txn map[string]any
	suite.Require().NoError(json.Unmarshal(env.Data, &txn))
	suite.Equal("t1", txn["id"])
	suite.Equal("1200.5", txn["amount"], "amounts are serialized as decimal strings")
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_RejectsInvalidBody() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown category", map[string]any{"title": "Rent", "category": "PETS", "type": "Expense", "amount": "10", "status": "Completed"}},
		{"negative amount", map[string]any{"title": "Rent", "category": "RENT", "type": "Expense", "amount": "-10", "status": "Completed"}},
		{"lowercase type", map[string]any{"title": "Rent", "category": "RENT", "type": "expense", "amount": "10", "status": "Completed"}},
		{"missing amount", map[string]any{"title": "Rent", "category": "RENT", "type": "Expense", "status": "Completed"}},
		{"title too short", map[string]any{"title": "R", "category": "RENT", "type": "Expense", "amount": "10", "status": "Completed"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.serve(newAuthedRequest(suite.T(), http.MethodPost, "/api/v1/transactions", tt.body, "user-1"))

			suite.Equal(http.StatusBadRequest, w.Code)
			env := decodeEnvelope(suite.T(), w)
			suite.True(env.Error)
			suite.Equal(http.StatusBadRequest, env.StatusCode)
		})
	}
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesQuery() {
	resp := &dto.ListTransactionsResponse{
		Data: dto.ToTransactionResponses([]domain.Transaction{*sampleTransaction("t1", "user-1")}),
		Meta: pagination.NewMeta(2, 5, 6),
	}
	suite.mockTransactionService.On("ListTransactions", mock.Anything, "user-1", mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Page == 2 && p.Limit == 5 && p.Search == "rent" && p.Type == "Expense" && p.OrderBy == "amount" && p.Order == "DESC"
	})).Return(resp, nil).Once()

	req := newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions?page=2&limit=5&search=rent&type=Expense&orderBy=amount&order=DESC", nil, "user-1")
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope(suite.T(), w)
	var page dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &page))
	suite.Len(page.Data, 1)
	suite.Equal(2, page.Meta.PageCount)
	suite.True(page.Meta.HasPreviousPage)
	suite.False(page.Meta.HasNextPage)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_LimitAboveMaximum() {
	w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions?limit=51", nil, "user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListUpcomingTransactions() {
	resp := &dto.ListTransactionsResponse{Data: []dto.TransactionResponse{}, Meta: pagination.NewMeta(1, 10, 0)}
	suite.mockTransactionService.On("ListUpcomingTransactions", mock.Anything, "user-1", mock.AnythingOfType("dto.ListTransactionsParams")).Return(resp, nil).Once()

	w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions/upcoming", nil, "user-1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Upcoming transactions retrieved successfully", decodeEnvelope(suite.T(), w).Message)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_DefaultWindow() {
	summary := &domain.Summary{
		TotalBalance: domain.ChangeValue{Value: decimal.NewFromInt(800), ChangePercent: decimal.NewFromInt(100)},
		Income:       domain.ChangeValue{Value: decimal.NewFromInt(1200), ChangePercent: decimal.NewFromInt(100)},
		Expenses:     domain.ChangeValue{Value: decimal.NewFromInt(400), ChangePercent: decimal.NewFromInt(100)},
		Investments:  domain.ChangeValue{Value: decimal.NewFromInt(200), ChangePercent: decimal.NewFromInt(100)},
		Window: domain.DateRange{
			Start: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		Transactions:    []domain.Transaction{},
		RangeByCategory: []domain.CategoryAmount{{Category: domain.CategorySalary, Amount: decimal.NewFromInt(1000)}},
	}
	suite.mockSummaryService.On("GetSummary", mock.Anything, "user-1", (*time.Time)(nil), (*time.Time)(nil)).Return(summary, nil).Once()

	w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions/summary", nil, "user-1"))

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope(suite.T(), w)
	suite.Equal("Financial summary generated successfully", env.Message)

	var body map[string]any
	suite.Require().NoError(json.Unmarshal(env.Data, &body))
	income := body["income"].(map[string]any)
	suite.Equal("1200", income["value"])
	suite.Equal("100", income["change_percent"])
	rangeData := body["range_data"].(map[string]any)
	suite.Equal("2025-02-01", rangeData["start_month"])
	suite.Equal("2025-04-30", rangeData["end_month"])
	suite.Len(body["range_by_category"], 1)
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_ExplicitBounds() {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	suite.mockSummaryService.On("GetSummary", mock.Anything, "user-1",
		mock.MatchedBy(func(s *time.Time) bool { return s != nil && s.Equal(start) }),
		mock.MatchedBy(func(e *time.Time) bool { return e != nil && e.Equal(time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC)) }),
	).Return(&domain.Summary{Window: domain.DateRange{Start: start, End: start}}, nil).Once()

	w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions/summary?start_month=2025-01-01&end_month=2025-03-31T12:00:00Z", nil, "user-1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSummaryService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_MalformedDate() {
	w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions/summary?start_month=2025-13-01", nil, "user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	env := decodeEnvelope(suite.T(), w)
	suite.True(env.Error)
	suite.Contains(env.Message, "start_month")
	suite.mockSummaryService.AssertNotCalled(suite.T(), "GetSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_StoreFailure() {
	suite.mockSummaryService.On("GetSummary", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions/summary", nil, "user-1"))

	suite.Equal(http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(suite.T(), w)
	suite.Equal("Failed to generate summary", env.Message)
	suite.NotContains(w.Body.String(), assert.AnError.Error())
}

func (suite *TransactionHandlerTestSuite) TestServiceErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"validation", apperrors.NewValidationError("title must be between 2 and 100 characters"), http.StatusBadRequest},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.mockTransactionService.On("GetTransactionByID", mock.Anything, "user-1", "t1").Return(nil, tt.err).Once()

			w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions/t1", nil, "user-1"))

			suite.Equal(tt.status, w.Code)
			env := decodeEnvelope(suite.T(), w)
			suite.True(env.Error)
			suite.Equal(tt.status, env.StatusCode)
		})
	}
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction() {
	suite.mockTransactionService.On("UpdateTransaction", mock.Anything, "user-1", "t1", mock.MatchedBy(func(r dto.UpdateTransactionRequest) bool {
		return r.Title != nil && *r.Title == "New title" && r.Amount == nil
	})).Return(sampleTransaction("t1", "user-1"), nil).Once()

	w := suite.serve(newAuthedRequest(suite.T(), http.MethodPut, "/api/v1/transactions/t1", map[string]any{"title": "New title"}, "user-1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction() {
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, "user-1", "t1").Return(nil).Once()
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, "user-2", "t1").Return(apperrors.ErrNotFound).Once()

	w := suite.serve(newAuthedRequest(suite.T(), http.MethodDelete, "/api/v1/transactions/t1", nil, "user-1"))
	suite.Equal(http.StatusOK, w.Code)

	w = suite.serve(newAuthedRequest(suite.T(), http.MethodDelete, "/api/v1/transactions/t1", nil, "user-2"))
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Transaction not found", decodeEnvelope(suite.T(), w).Message)
}

func (suite *TransactionHandlerTestSuite) TestRequiresAuthentication() {
	w := suite.serve(newAuthedRequest(suite.T(), http.MethodGet, "/api/v1/transactions/summary", nil, ""))

	suite.Equal(http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(suite.T(), w)
	suite.True(env.Error)
	suite.Equal("Authorization header required", env.Message)
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
