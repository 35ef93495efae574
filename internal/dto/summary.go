package dto

import (
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by the summary window.
const DateLayout = "2006-01-02"

// SummaryQuery defines the optional window of the summary endpoint.
// Values are ISO dates (YYYY-MM-DD) or RFC3339 timestamps.
type SummaryQuery struct {
	StartMonth string `form:"start_month"`
	EndMonth   string `form:"end_month"`
}

// ChangeValueResponse is an aggregate value with its year-over-year change.
type ChangeValueResponse struct {
	Value         decimal.Decimal `json:"value" swaggertype:"string" example:"800"`
	ChangePercent decimal.Decimal `json:"change_percent" swaggertype:"string" example:"12.5"`
}

// RangeDataResponse echoes the resolved window and its transactions.
type RangeDataResponse struct {
	StartMonth   string                `json:"start_month" example:"2025-02-01"`
	EndMonth     string                `json:"end_month" example:"2025-04-30"`
	Transactions []TransactionResponse `json:"transactions"`
}

// CategoryAmountResponse is the summed amount of one category.
type CategoryAmountResponse struct {
	Category domain.TransactionCategory `json:"category"`
	Amount   decimal.Decimal            `json:"amount" swaggertype:"string"`
}

// SummaryResponse defines the financial summary returned to clients.
type SummaryResponse struct {
	TotalBalance    ChangeValueResponse      `json:"total_balance"`
	Income          ChangeValueResponse      `json:"income"`
	Expenses        ChangeValueResponse      `json:"expenses"`
	Investments     ChangeValueResponse      `json:"investments"`
	RangeData       RangeDataResponse        `json:"range_data"`
	RangeByCategory []CategoryAmountResponse `json:"range_by_category"`
}

func toChangeValueResponse(v domain.ChangeValue) ChangeValueResponse {
	return ChangeValueResponse{Value: v.Value, ChangePercent: v.ChangePercent}
}

// ToSummaryResponse converts a domain.Summary to SummaryResponse DTO.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	byCategory := make([]CategoryAmountResponse, len(s.RangeByCategory))
	for i, c := range s.RangeByCategory {
		byCategory[i] = CategoryAmountResponse{Category: c.Category, Amount: c.Amount}
	}
	return SummaryResponse{
		TotalBalance: toChangeValueResponse(s.TotalBalance),
		Income:       toChangeValueResponse(s.Income),
		Expenses:     toChangeValueResponse(s.Expenses),
		Investments:  toChangeValueResponse(s.Investments),
		RangeData: RangeDataResponse{
			StartMonth:   s.Window.Start.Format(DateLayout),
			EndMonth:     s.Window.End.Format(DateLayout),
			Transactions: ToTransactionResponses(s.Transactions),
		},
		RangeByCategory: byCategory,
	}
}
