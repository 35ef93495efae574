package finance

import (
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentChange returns the relative change from previous to current, in percent.
//
// A zero baseline has no meaningful ratio, so it is reported as 0 when current
// is also zero and as 100 otherwise. A move from 0 to 100 and a move from 0 to
// 1,000,000 therefore both report 100. No rounding is applied beyond the
// decimal division precision.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// SumBy adds up the amounts of the transactions accepted by keep.
func SumBy(txns []domain.Transaction, keep func(domain.Transaction) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txns {
		if keep(tx) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// CalculateTotals computes income, expense, investment and balance totals.
// Investments are selected by category, independent of the transaction type.
func CalculateTotals(txns []domain.Transaction) domain.Totals {
	income := SumBy(txns, func(tx domain.Transaction) bool { return tx.Type == domain.Income })
	expenses := SumBy(txns, func(tx domain.Transaction) bool { return tx.Type == domain.Expense })
	investments := SumBy(txns, func(tx domain.Transaction) bool { return tx.Category == domain.CategoryInvestment })

	return domain.Totals{
		Income:      income,
		Expenses:    expenses,
		Investments: investments,
		Balance:     income.Sub(expenses),
	}
}

// BucketByCategory sums amounts per category. The output keeps the order in
// which categories are first seen in txns; categories without transactions
// are omitted.
func BucketByCategory(txns []domain.Transaction) []domain.CategoryAmount {
	sums := make(map[domain.TransactionCategory]decimal.Decimal)
	order := make([]domain.TransactionCategory, 0)

	for _, tx := range txns {
		sum, seen := sums[tx.Category]
		if !seen {
			order = append(order, tx.Category)
			sum = decimal.Zero
		}
		sums[tx.Category] = sum.Add(tx.Amount)
	}

	result := make([]domain.CategoryAmount, len(order))
	for i, cat := range order {
		result[i] = domain.CategoryAmount{Category: cat, Amount: sums[cat]}
	}
	return result
}
