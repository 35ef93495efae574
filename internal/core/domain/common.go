package domain

import (
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // Soft delete marker, never exposed
}

// SortOrder is the direction applied to a list query.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ListQuery carries the normalized paging, search and sort options that
// repositories apply to list queries.
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	OrderBy string
	Order   SortOrder
}

// Offset returns the row offset for the current page.
func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Sortable columns of each list endpoint.
var (
	TransactionSortFields = []string{"title", "subtitle", "amount", "type", "category", "date", "created_at"}
	GptSortFields         = []string{"name", "goal", "temperature", "created_at"}
)

// ValidateOrderBy checks that field is one of allowed.
func ValidateOrderBy(field string, allowed []string) error {
	for _, f := range allowed {
		if f == field {
			return nil
		}
	}
	return apperrors.NewValidationError("orderBy must be one of %v", allowed)
}
