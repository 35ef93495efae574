package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the SQLSTATE raised when a unique constraint fails.
const pgUniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// isUniqueViolation reports whether err is a unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// listClauses builds the ORDER BY / LIMIT / OFFSET tail of a list query.
// orderBy has already been checked against the allowed columns by the service;
// it is checked again here because it is interpolated into the SQL text.
func listClauses(q domain.ListQuery, allowed []string, argNum int) (string, []any, error) {
	if err := domain.ValidateOrderBy(q.OrderBy, allowed); err != nil {
		return "", nil, err
	}
	order := "ASC"
	if strings.EqualFold(string(q.Order), string(domain.SortDesc)) {
		order = "DESC"
	}
	clause := fmt.Sprintf(" ORDER BY %s %s, id ASC LIMIT $%d OFFSET $%d", q.OrderBy, order, argNum, argNum+1)
	return clause, []any{q.Limit, q.Offset()}, nil
}

// likePattern wraps a search term for ILIKE, escaping its wildcards.
func likePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(search) + "%"
}
