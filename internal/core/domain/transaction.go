package domain

import (
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType classifies the cash-flow direction of a transaction.
type TransactionType string

const (
	Income   TransactionType = "Income"
	Expense  TransactionType = "Expense"
	Transfer TransactionType = "Transfer"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "Pending"
	StatusCompleted TransactionStatus = "Completed"
	StatusFailed    TransactionStatus = "Failed"
)

// TransactionCategory is the closed set of ledger categories.
type TransactionCategory string

const (
	CategorySalary        TransactionCategory = "SALARY"
	CategoryFreelance     TransactionCategory = "FREELANCE"
	CategoryInvestment    TransactionCategory = "INVESTMENT"
	CategoryGift          TransactionCategory = "GIFT"
	CategoryFood          TransactionCategory = "FOOD"
	CategoryGroceries     TransactionCategory = "GROCERIES"
	CategoryTransport     TransactionCategory = "TRANSPORT"
	CategoryTravel        TransactionCategory = "TRAVEL"
	CategoryHealth        TransactionCategory = "HEALTH"
	CategoryInsurance     TransactionCategory = "INSURANCE"
	CategoryEducation     TransactionCategory = "EDUCATION"
	CategoryEntertainment TransactionCategory = "ENTERTAINMENT"
	CategoryUtilities     TransactionCategory = "UTILITIES"
	CategorySubscriptions TransactionCategory = "SUBSCRIPTIONS"
	CategoryShopping      TransactionCategory = "SHOPPING"
	CategoryTaxes         TransactionCategory = "TAXES"
	CategoryRent          TransactionCategory = "RENT"
	CategoryLoan          TransactionCategory = "LOAN"
	CategoryCharity       TransactionCategory = "CHARITY"
	CategoryOther         TransactionCategory = "OTHER"
)

var transactionTypes = map[TransactionType]struct{}{
	Income: {}, Expense: {}, Transfer: {},
}

var transactionStatuses = map[TransactionStatus]struct{}{
	StatusPending: {}, StatusCompleted: {}, StatusFailed: {},
}

var transactionCategories = map[TransactionCategory]struct{}{
	CategorySalary: {}, CategoryFreelance: {}, CategoryInvestment: {}, CategoryGift: {},
	CategoryFood: {}, CategoryGroceries: {}, CategoryTransport: {}, CategoryTravel: {},
	CategoryHealth: {}, CategoryInsurance: {}, CategoryEducation: {}, CategoryEntertainment: {},
	CategoryUtilities: {}, CategorySubscriptions: {}, CategoryShopping: {}, CategoryTaxes: {},
	CategoryRent: {}, CategoryLoan: {}, CategoryCharity: {}, CategoryOther: {},
}

// ParseTransactionType converts a raw value into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if _, ok := transactionTypes[t]; !ok {
		return "", apperrors.NewValidationError("unknown transaction type %q", s)
	}
	return t, nil
}

// ParseTransactionStatus converts a raw value into a TransactionStatus.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	st := TransactionStatus(s)
	if _, ok := transactionStatuses[st]; !ok {
		return "", apperrors.NewValidationError("unknown transaction status %q", s)
	}
	return st, nil
}

// ParseTransactionCategory converts a raw value into a TransactionCategory.
func ParseTransactionCategory(s string) (TransactionCategory, error) {
	c := TransactionCategory(s)
	if _, ok := transactionCategories[c]; !ok {
		return "", apperrors.NewValidationError("unknown transaction category %q", s)
	}
	return c, nil
}

// Transaction is a single personal ledger entry owned by one user.
type Transaction struct {
	TransactionID string              `json:"id"`
	OwnerID       string              `json:"user_id"`
	Title         string              `json:"title"`
	Subtitle      *string             `json:"subtitle,omitempty"`
	Category      TransactionCategory `json:"category"`
	Type          TransactionType     `json:"type"`
	Amount        decimal.Decimal     `json:"amount"` // Never negative; direction comes from Type
	Date          time.Time           `json:"date"`
	Status        TransactionStatus   `json:"status"`
	AuditFields
}

// Validate checks the invariants a transaction must satisfy before it is stored.
func (t Transaction) Validate() error {
	if l := len([]rune(t.Title)); l < 2 || l > 100 {
		return apperrors.NewValidationError("title must be between 2 and 100 characters")
	}
	if t.Subtitle != nil && len([]rune(*t.Subtitle)) > 150 {
		return apperrors.NewValidationError("subtitle must be at most 150 characters")
	}
	if t.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must not be negative")
	}
	if _, err := ParseTransactionCategory(string(t.Category)); err != nil {
		return err
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if _, err := ParseTransactionStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

// TransactionFilter narrows a transaction list query.
type TransactionFilter struct {
	ListQuery
	Type       *TransactionType
	Status     *TransactionStatus
	UpcomingAt *time.Time // When set, only transactions dated strictly after it
}
