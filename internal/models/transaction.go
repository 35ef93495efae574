package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Enum columns are kept as
// raw strings and parsed when mapped to the domain.
type Transaction struct {
	TransactionID string          `db:"id"`
	UserID        string          `db:"user_id"`
	Title         string          `db:"title"`
	Subtitle      *string         `db:"subtitle"`
	Category      string          `db:"category"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"` // NUMERIC(10,2)
	Date          time.Time       `db:"date"`
	Status        string          `db:"status"`
	AuditFields
}
