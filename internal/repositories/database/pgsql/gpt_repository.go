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

type PgxGptRepository struct {
	BaseRepository
}

func newPgxGptRepository(pool *pgxpool.Pool) portsrepo.GptRepositoryFacade {
	return &PgxGptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GptRepositoryFacade = (*PgxGptRepository)(nil)

const gptColumns = `id, user_id, name, image, description, goal, temperature, capabilities, limitations, is_public, created_at, updated_at, deleted_at`

func scanGpt(row pgx.Row) (models.Gpt, error) {
	var m models.Gpt
	err := row.Scan(
		&m.GptID,
		&m.UserID,
		&m.Name,
		&m.Image,
		&m.Description,
		&m.Goal,
		&m.Temperature,
		&m.Capabilities,
		&m.Limitations,
		&m.IsPublic,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxGptRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Gpt, error) {
	m, err := scanGpt(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find gpt", err)
	}
	g := mapping.ToDomainGpt(m)
	return &g, nil
}

func (r *PgxGptRepository) FindGptByID(ctx context.Context, gptID string) (*domain.Gpt, error) {
	query := `SELECT ` + gptColumns + ` FROM gpt WHERE id = $1 AND deleted_at IS NULL;`
	return r.findOne(ctx, query, gptID)
}

func (r *PgxGptRepository) FindGptByName(ctx context.Context, ownerID, name string) (*domain.Gpt, error) {
	query := `SELECT ` + gptColumns + ` FROM gpt WHERE user_id = $1 AND name = $2 AND deleted_at IS NULL;`
	return r.findOne(ctx, query, ownerID, name)
}

func (r *PgxGptRepository) FindVisibleGpts(ctx context.Context, ownerID string, query domain.ListQuery) ([]domain.Gpt, int, error) {
	whereClause := ` WHERE (user_id = $1 OR is_public) AND deleted_at IS NULL`
	args := []any{ownerID}
	argNum := 2

	if query.Search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d OR goal ILIKE $%d)", argNum, argNum, argNum)
		args = append(args, likePattern(query.Search))
		argNum++
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM gpt`+whereClause+`;`, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count gpts", err)
	}

	tail, tailArgs, err := listClauses(query, domain.GptSortFields, argNum)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+gptColumns+` FROM gpt`+whereClause+tail+`;`, append(args, tailArgs...)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query gpts", err)
	}
	defer rows.Close()

	modelGpts := []models.Gpt{}
	for rows.Next() {
		m, err := scanGpt(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan gpt row", err)
		}
		modelGpts = append(modelGpts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating gpt rows", err)
	}
	return mapping.ToDomainGptSlice(modelGpts), total, nil
}

func (r *PgxGptRepository) SaveGpt(ctx context.Context, gpt domain.Gpt) error {
	m := mapping.ToModelGpt(gpt)
	query := `
		INSERT INTO gpt (id, user_id, name, image, description, goal, temperature, capabilities, limitations, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GptID,
		m.UserID,
		m.Name,
		m.Image,
		m.Description,
		m.Goal,
		m.Temperature,
		m.Capabilities,
		m.Limitations,
		m.IsPublic,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a gpt named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to insert gpt", err)
	}
	return nil
}

func (r *PgxGptRepository) UpdateGpt(ctx context.Context, gpt domain.Gpt) error {
	m := mapping.ToModelGpt(gpt)
	query := `
		UPDATE gpt
		SET name = $1, image = $2, description = $3, goal = $4, temperature = $5,
		    capabilities = $6, limitations = $7, is_public = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Image,
		m.Description,
		m.Goal,
		m.Temperature,
		m.Capabilities,
		m.Limitations,
		m.IsPublic,
		m.UpdatedAt,
		m.GptID,
		m.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a gpt named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to update gpt", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("gpt not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxGptRepository) MarkGptDeleted(ctx context.Context, ownerID, gptID string, deletedAt time.Time) error {
	query := `
		UPDATE gpt
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, gptID, ownerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark gpt as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("gpt not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
