package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/utils/finance"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// summaryService implements the SummarySvc interface
type summaryService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// SummaryServiceOption is a functional option for configuring the summary service
type SummaryServiceOption func(*summaryService)

// WithClock sets the clock the default window is resolved against.
func WithClock(clock func() time.Time) SummaryServiceOption {
	return func(s *summaryService) {
		s.clock = clock
	}
}

// NewSummaryService creates a new summary service with the provided options
func NewSummaryService(repo portsrepo.TransactionReader, options ...SummaryServiceOption) portssvc.SummarySvc {
	svc := &summaryService{
		transactionRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure summaryService implements the SummarySvc interface
var _ portssvc.SummarySvc = (*summaryService)(nil)

// GetSummary resolves the window, loads it and its prior-year counterpart
// concurrently, then compares the two.
func (s *summaryService) GetSummary(ctx context.Context, ownerID string, start, end *time.Time) (*domain.Summary, error) {
	window := domain.ResolveSummaryWindow(s.Now(), start, end)
	previousWindow := window.PreviousYear()

	var current, previous []domain.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txns, err := s.transactionRepo.FindTransactionsByDateRange(gctx, ownerID, window.Start, window.End)
		if err != nil {
			return fmt.Errorf("failed to load current window: %w", err)
		}
		current = txns
		return nil
	})
	g.Go(func() error {
		txns, err := s.transactionRepo.FindTransactionsByDateRange(gctx, ownerID, previousWindow.Start, previousWindow.End)
		if err != nil {
			return fmt.Errorf("failed to load comparison window: %w", err)
		}
		previous = txns
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for summary",
			slog.String("start", window.Start.Format(time.DateOnly)),
			slog.String("end", window.End.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}
	if current == nil {
		current = []domain.Transaction{}
	}

	cur := finance.CalculateTotals(current)
	prev := finance.CalculateTotals(previous)

	summary := &domain.Summary{
		TotalBalance:    change(cur.Balance, prev.Balance),
		Income:          change(cur.Income, prev.Income),
		Expenses:        change(cur.Expenses, prev.Expenses),
		Investments:     change(cur.Investments, prev.Investments),
		Window:          window,
		Transactions:    current,
		RangeByCategory: finance.BucketByCategory(current),
	}

	s.LogInfo(ctx, "Financial summary generated successfully",
		slog.String("start", window.Start.Format(time.DateOnly)),
		slog.String("end", window.End.Format(time.DateOnly)),
		slog.Int("current_count", len(current)),
		slog.Int("previous_count", len(previous)))
	return summary, nil
}

func change(current, previous decimal.Decimal) domain.ChangeValue {
	return domain.ChangeValue{Value: current, ChangePercent: finance.PercentChange(current, previous)}
}
