package services

import (
	"context"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
)

// TransactionReaderSvc defines read operations for an owner's transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one of the owner's transactions.
	GetTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of the owner's transactions.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListUpcomingTransactions retrieves a page of the owner's transactions dated in the future.
	ListUpcomingTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for an owner's transactions.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// SummarySvc builds the financial summary of an owner.
type SummarySvc interface {
	// GetSummary aggregates the owner's transactions over [start, end] and
	// compares them with the same window one year earlier. Nil bounds fall
	// back to the default window.
	GetSummary(ctx context.Context, ownerID string, start, end *time.Time) (*domain.Summary, error)
}
