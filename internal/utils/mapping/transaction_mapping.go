package mapping

import (
	"fmt"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.OwnerID,
		Title:         d.Title,
		Subtitle:      d.Subtitle,
		Category:      string(d.Category),
		Type:          string(d.Type),
		Amount:        d.Amount,
		Date:          d.Date,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Unknown enum values stored in the row are reported as errors.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	category, err := domain.ParseTransactionCategory(m.Category)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	txnType, err := domain.ParseTransactionType(m.Type)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	status, err := domain.ParseTransactionStatus(m.Status)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}

	return domain.Transaction{
		TransactionID: m.TransactionID,
		OwnerID:       m.UserID,
		Title:         m.Title,
		Subtitle:      m.Subtitle,
		Category:      category,
		Type:          txnType,
		Amount:        m.Amount,
		Date:          m.Date,
		Status:        status,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainTransactionSlice converts a slice of model Transactions, stopping at the first invalid row.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
