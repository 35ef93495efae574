package mapping

import (
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/models"
)

// ToModelGpt converts a domain Gpt to a model Gpt
func ToModelGpt(d domain.Gpt) models.Gpt {
	return models.Gpt{
		GptID:        d.GptID,
		UserID:       d.OwnerID,
		Name:         d.Name,
		Image:        d.Image,
		Description:  d.Description,
		Goal:         d.Goal,
		Temperature:  d.Temperature,
		Capabilities: d.Capabilities,
		Limitations:  d.Limitations,
		IsPublic:     d.IsPublic,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGpt converts a model Gpt to a domain Gpt
func ToDomainGpt(m models.Gpt) domain.Gpt {
	return domain.Gpt{
		GptID:        m.GptID,
		OwnerID:      m.UserID,
		Name:         m.Name,
		Image:        m.Image,
		Description:  m.Description,
		Goal:         m.Goal,
		Temperature:  m.Temperature,
		Capabilities: nonNil(m.Capabilities),
		Limitations:  nonNil(m.Limitations),
		IsPublic:     m.IsPublic,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGptSlice converts a slice of model Gpts to a slice of domain Gpts
func ToDomainGptSlice(ms []models.Gpt) []domain.Gpt {
	ds := make([]domain.Gpt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGpt(m)
	}
	return ds
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
