package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_assistant_app/internal/core/ports/repositories"
	"github.com/SscSPs/finance_assistant_app/internal/models"
	"github.com/SscSPs/finance_assistant_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `id, user_id, title, subtitle, category, type, amount, date, status, created_at, updated_at, deleted_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Title,
		&m.Subtitle,
		&m.Category,
		&m.Type,
		&m.Amount,
		&m.Date,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns)
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (id, user_id, title, subtitle, category, type, amount, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Title,
		m.Subtitle,
		m.Category,
		m.Type,
		m.Amount,
		m.Date,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "stored transaction is invalid", err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	whereClause := ` WHERE user_id = $1 AND deleted_at IS NULL`
	args := []any{ownerID}
	argNum := 2

	if filter.Search != "" {
		whereClause += fmt.Sprintf(" AND (title ILIKE $%d OR subtitle ILIKE $%d OR amount::text ILIKE $%d)", argNum, argNum, argNum)
		args = append(args, likePattern(filter.Search))
		argNum++
	}
	if filter.Type != nil {
		whereClause += fmt.Sprintf(" AND type = $%d", argNum)
		args = append(args, string(*filter.Type))
		argNum++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(*filter.Status))
		argNum++
	}
	if filter.UpcomingAt != nil {
		whereClause += fmt.Sprintf(" AND date > $%d", argNum)
		args = append(args, *filter.UpcomingAt)
		argNum++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	tail, tailArgs, err := listClauses(filter.ListQuery, domain.TransactionSortFields, argNum)
	if err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions` + whereClause + tail + `;`

	rows, err := r.Pool.Query(ctx, query, append(args, tailArgs...)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *PgxTransactionRepository) FindTransactionsByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Transaction, error) {
	window := domain.DateRange{Start: from, End: to}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND deleted_at IS NULL AND date >= $2 AND date < $3
		ORDER BY date ASC, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, window.Start, window.EndExclusive())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions by date range", err)
	}
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET title = $1, subtitle = $2, category = $3, type = $4, amount = $5, date = $6, status = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Subtitle,
		m.Category,
		m.Type,
		m.Amount,
		m.Date,
		m.Status,
		m.UpdatedAt,
		m.TransactionID,
		m.UserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, ownerID, transactionID string, deletedAt time.Time) error {
	query := `
		UPDATE transactions
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, transactionID, ownerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark transaction as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
