package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/SscSPs/finance_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	summaryService     portssvc.SummarySvc
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, ss portssvc.SummarySvc) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		summaryService:     ss,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, summaryService portssvc.SummarySvc) {
	registerValidators()
	h := newTransactionHandler(transactionService, summaryService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/summary", h.getSummary)
		transactions.GET("/upcoming", h.listUpcomingTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a new transaction for the logged-in user. The date defaults to now.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.APIResponse{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to create transaction")
		return
	}

	respondOK(c, http.StatusCreated, "Transaction created successfully", dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the logged-in user's transactions, paginated.
// @Tags transactions
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search in title, subtitle and amount"
// @Param   type query string false "Transaction type" Enums(Income, Expense, Transfer)
// @Param   status query string false "Transaction status" Enums(Pending, Completed, Failed)
// @Param   orderBy query string false "Sort field" Enums(title, subtitle, amount, type, category, date, created_at)
// @Param   order query string false "Sort direction" Enums(ASC, DESC)
// @Success 200 {object} dto.APIResponse{data=dto.ListTransactionsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	h.list(c, h.transactionService.ListTransactions, "Transactions retrieved successfully")
}

// listUpcomingTransactions godoc
// @Summary List upcoming transactions
// @Description Lists the logged-in user's transactions dated in the future, paginated.
// @Tags transactions
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search in title, subtitle and amount"
// @Param   orderBy query string false "Sort field"
// @Param   order query string false "Sort direction" Enums(ASC, DESC)
// @Success 200 {object} dto.APIResponse{data=dto.ListTransactionsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions/upcoming [get]
func (h *transactionHandler) listUpcomingTransactions(c *gin.Context) {
	h.list(c, h.transactionService.ListUpcomingTransactions, "Upcoming transactions retrieved successfully")
}

type listTransactionsFunc func(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

func (h *transactionHandler) list(c *gin.Context, fetch listTransactionsFunc, message string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for transaction list", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := fetch(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Transactions not found", "Failed to list transactions")
		return
	}

	respondOK(c, http.StatusOK, message, resp)
}

// getSummary godoc
// @Summary Financial summary
// @Description Aggregates income, expenses, investments and balance over a window and compares them with the same window one year earlier.
// @Description Without bounds the window runs from the first day of the previous month through the last day of the next month.
// @Tags transactions
// @Produce  json
// @Param   start_month query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param   end_month query string false "Window end, inclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.APIResponse{data=dto.SummaryResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate summary"
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var query dto.SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	start, err := parseWindowDate(query.StartMonth)
	if err != nil {
		logger.Warn("Invalid start_month", slog.String("value", query.StartMonth))
		respondError(c, http.StatusBadRequest, "start_month must be a date (YYYY-MM-DD) or an RFC3339 timestamp")
		return
	}
	end, err := parseWindowDate(query.EndMonth)
	if err != nil {
		logger.Warn("Invalid end_month", slog.String("value", query.EndMonth))
		respondError(c, http.StatusBadRequest, "end_month must be a date (YYYY-MM-DD) or an RFC3339 timestamp")
		return
	}

	summary, err := h.summaryService.GetSummary(c.Request.Context(), userID, start, end)
	if err != nil {
		respondServiceError(c, logger, err, "Summary not found", "Failed to generate summary")
		return
	}

	respondOK(c, http.StatusOK, "Financial summary generated successfully", dto.ToSummaryResponse(summary))
}

// parseWindowDate accepts an ISO calendar date or an RFC3339 timestamp.
// An empty value yields nil.
func parseWindowDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(dto.DateLayout, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.APIResponse{data=dto.TransactionResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to retrieve transaction")
		return
	}

	respondOK(c, http.StatusOK, "Transaction retrieved successfully", dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Changes the provided fields of a transaction; omitted fields keep their value.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to update transaction")
		return
	}

	respondOK(c, http.StatusOK, "Transaction updated successfully", dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to delete transaction")
		return
	}

	respondOK(c, http.StatusOK, "Transaction deleted successfully", nil)
}
