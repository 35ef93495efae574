package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/google/uuid"
)

const defaultTransactionOrderBy = "created_at"

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for defaults and the upcoming cut-off.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.clock = clock
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Category:      req.Category,
		Type:          req.Type,
		Date:          now,
		Status:        req.Status,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}

	if err := txn.Validate(); err != nil {
		s.LogDebug(ctx, "Transaction rejected by validation", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction in repository", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		// Not found is an expected outcome, don't log it as an error
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID in repository", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	s.LogDebug(ctx, "Transaction retrieved successfully", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := s.buildFilter(params)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, ownerID, filter)
}

func (s *transactionService) ListUpcomingTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := s.buildFilter(params)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	filter.UpcomingAt = &now
	return s.list(ctx, ownerID, filter)
}

func (s *transactionService) list(ctx context.Context, ownerID string, filter domain.TransactionFilter) (*dto.ListTransactionsResponse, error) {
	txns, total, err := s.transactionRepo.FindTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository",
			slog.Int("page", filter.Page),
			slog.Int("limit", filter.Limit))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	s.LogDebug(ctx, "Transactions listed successfully", slog.Int("count", len(txns)), slog.Int("total", total))
	return dto.ToListTransactionsResponse(txns, filter.ListQuery, total), nil
}

func (s *transactionService) buildFilter(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	query := params.ToListQuery(defaultTransactionOrderBy)
	if err := domain.ValidateOrderBy(query.OrderBy, domain.TransactionSortFields); err != nil {
		return domain.TransactionFilter{}, err
	}

	filter := domain.TransactionFilter{ListQuery: query}
	if params.Type != "" {
		t, err := domain.ParseTransactionType(params.Type)
		if err != nil {
			return domain.TransactionFilter{}, err
		}
		filter.Type = &t
	}
	if params.Status != "" {
		st, err := domain.ParseTransactionStatus(params.Status)
		if err != nil {
			return domain.TransactionFilter{}, err
		}
		filter.Status = &st
	}
	return filter, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		txn.Title = *req.Title
	}
	if req.Subtitle != nil {
		txn.Subtitle = req.Subtitle
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Status != nil {
		txn.Status = *req.Status
	}
	txn.UpdatedAt = s.Now()

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction in repository", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	if err := s.transactionRepo.MarkTransactionDeleted(ctx, ownerID, transactionID, s.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction in repository", slog.String("transaction_id", transactionID))
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted successfully", slog.String("transaction_id", transactionID))
	return nil
}
