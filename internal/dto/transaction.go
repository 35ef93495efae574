package dto

import (
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
type CreateTransactionRequest struct {
	Title    string                     `json:"title" binding:"required,min=2,max=100"`
	Subtitle *string                    `json:"subtitle" binding:"omitempty,max=150"`
	Category domain.TransactionCategory `json:"category" binding:"required,transaction_category"`
	Type     domain.TransactionType     `json:"type" binding:"required,oneof=Income Expense Transfer"`
	Amount   *decimal.Decimal           `json:"amount" binding:"required,gte=0" swaggertype:"string" example:"1200.50"`
	Date     *time.Time                 `json:"date"` // Optional, defaults to now
	Status   domain.TransactionStatus   `json:"status" binding:"required,oneof=Pending Completed Failed"`
}

// UpdateTransactionRequest defines the fields that can be changed on a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Title    *string                     `json:"title" binding:"omitempty,min=2,max=100"`
	Subtitle *string                     `json:"subtitle" binding:"omitempty,max=150"`
	Category *domain.TransactionCategory `json:"category" binding:"omitempty,transaction_category"`
	Type     *domain.TransactionType     `json:"type" binding:"omitempty,oneof=Income Expense Transfer"`
	Amount   *decimal.Decimal            `json:"amount" binding:"omitempty,gte=0" swaggertype:"string"`
	Date     *time.Time                  `json:"date"`
	Status   *domain.TransactionStatus   `json:"status" binding:"omitempty,oneof=Pending Completed Failed"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	PageOptions
	Type   string `form:"type" binding:"omitempty,oneof=Income Expense Transfer"`
	Status string `form:"status" binding:"omitempty,oneof=Pending Completed Failed"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID        string                     `json:"id"`
	UserID    string                     `json:"user_id"`
	Title     string                     `json:"title"`
	Subtitle  *string                    `json:"subtitle"`
	Category  domain.TransactionCategory `json:"category"`
	Type      domain.TransactionType     `json:"type"`
	Amount    decimal.Decimal            `json:"amount" swaggertype:"string"`
	Date      time.Time                  `json:"date"`
	Status    domain.TransactionStatus   `json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Data []TransactionResponse `json:"data"`
	Meta pagination.Meta       `json:"meta"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.TransactionID,
		UserID:    txn.OwnerID,
		Title:     txn.Title,
		Subtitle:  txn.Subtitle,
		Category:  txn.Category,
		Type:      txn.Type,
		Amount:    txn.Amount,
		Date:      txn.Date,
		Status:    txn.Status,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToListTransactionsResponse builds a page response from a slice and its total count.
func ToListTransactionsResponse(txns []domain.Transaction, query domain.ListQuery, itemCount int) *ListTransactionsResponse {
	return &ListTransactionsResponse{
		Data: ToTransactionResponses(txns),
		Meta: pagination.NewMeta(query.Page, query.Limit, itemCount),
	}
}
