package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Every method is scoped to a single owner.
type TransactionReader interface {
	// FindTransactionByID retrieves a non-deleted transaction owned by ownerID.
	FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves one page of transactions plus the total
	// number of rows matching the filter.
	FindTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error)

	// FindTransactionsByDateRange retrieves all transactions dated inside the
	// inclusive range [from, to] (whole days), ordered by date ascending.
	FindTransactionsByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionDeleted soft deletes a transaction.
	MarkTransactionDeleted(ctx context.Context, ownerID, transactionID string, deletedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
