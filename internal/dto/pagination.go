package dto

import (
	"strings"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/utils/pagination"
)

// PageOptions defines the common query parameters of list endpoints.
type PageOptions struct {
	Page    int    `form:"page,default=1" binding:"min=1"`
	Limit   int    `form:"limit,default=10" binding:"min=1,max=50"`
	Search  string `form:"search"`
	Order   string `form:"order,default=ASC" binding:"omitempty,oneof=ASC DESC asc desc"`
	OrderBy string `form:"orderBy"`
}

// ToListQuery normalizes the options into a domain.ListQuery.
// An empty OrderBy is replaced by defaultOrderBy.
func (p PageOptions) ToListQuery(defaultOrderBy string) domain.ListQuery {
	page, limit := pagination.Normalize(p.Page, p.Limit)
	order := domain.SortAsc
	if strings.EqualFold(p.Order, string(domain.SortDesc)) {
		order = domain.SortDesc
	}
	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = defaultOrderBy
	}
	return domain.ListQuery{
		Page:    page,
		Limit:   limit,
		Search:  strings.TrimSpace(p.Search),
		OrderBy: orderBy,
		Order:   order,
	}
}
