package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is an inclusive [Start, End] pair of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DefaultSummaryWindow returns the window used when the caller gives no
// bounds: the first day of the previous month through the last day of the
// next month, relative to now.
func DefaultSummaryWindow(now time.Time) DateRange {
	y, m, _ := now.Date()
	loc := now.Location()
	return DateRange{
		Start: time.Date(y, m-1, 1, 0, 0, 0, 0, loc),
		End:   time.Date(y, m+2, 0, 0, 0, 0, 0, loc),
	}
}

// ResolveSummaryWindow fills the bounds the caller did not supply from the
// default window. Supplied bounds are used verbatim, an inverted window is
// left inverted.
func ResolveSummaryWindow(now time.Time, start, end *time.Time) DateRange {
	w := DefaultSummaryWindow(now)
	if start != nil {
		w.Start = *start
	}
	if end != nil {
		w.End = *end
	}
	return w
}

// PreviousYear shifts both bounds back one year, keeping month and day.
// A Feb 29 bound normalizes to Mar 1 of the prior year.
func (r DateRange) PreviousYear() DateRange {
	return DateRange{
		Start: r.Start.AddDate(-1, 0, 0),
		End:   r.End.AddDate(-1, 0, 0),
	}
}

// Contains reports whether t falls on a day inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.EndExclusive())
}

// EndExclusive is the first instant after the range's last day.
func (r DateRange) EndExclusive() time.Time {
	y, m, d := r.End.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, r.End.Location())
}

// ChangeValue is an aggregate together with its change against the
// comparison window, in percent.
type ChangeValue struct {
	Value         decimal.Decimal `json:"value"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// CategoryAmount is the summed amount of one category.
type CategoryAmount struct {
	Category TransactionCategory `json:"category"`
	Amount   decimal.Decimal     `json:"amount"`
}

// Totals are the four scalar aggregates of one window.
type Totals struct {
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Investments decimal.Decimal
	Balance     decimal.Decimal
}

// Summary is the financial overview of one owner over a window.
type Summary struct {
	TotalBalance    ChangeValue
	Income          ChangeValue
	Expenses        ChangeValue
	Investments     ChangeValue
	Window          DateRange
	Transactions    []Transaction
	RangeByCategory []CategoryAmount
}
