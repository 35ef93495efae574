package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Meta describes the position of a page inside a result set.
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	ItemCount       int  `json:"itemCount"`
	PageCount       int  `json:"pageCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// Normalize clamps page and limit into their accepted ranges.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// NewMeta computes page metadata for itemCount total rows.
func NewMeta(page, limit, itemCount int) Meta {
	page, limit = Normalize(page, limit)
	pageCount := (itemCount + limit - 1) / limit
	return Meta{
		Page:            page,
		Limit:           limit,
		ItemCount:       itemCount,
		PageCount:       pageCount,
		HasPreviousPage: page > 1,
		HasNextPage:     page < pageCount,
	}
}
