package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
)

// GptReader defines read operations for GPT configurations.
type GptReader interface {
	// FindGptByID retrieves a non-deleted configuration regardless of owner;
	// visibility is decided by the service.
	FindGptByID(ctx context.Context, gptID string) (*domain.Gpt, error)

	// FindGptByName retrieves the owner's configuration with the given name.
	FindGptByName(ctx context.Context, ownerID, name string) (*domain.Gpt, error)

	// FindVisibleGpts retrieves one page of configurations owned by ownerID
	// or marked public, plus the total matching count.
	FindVisibleGpts(ctx context.Context, ownerID string, query domain.ListQuery) ([]domain.Gpt, int, error)
}

// GptWriter defines write operations for GPT configurations.
type GptWriter interface {
	SaveGpt(ctx context.Context, gpt domain.Gpt) error
	UpdateGpt(ctx context.Context, gpt domain.Gpt) error
	MarkGptDeleted(ctx context.Context, ownerID, gptID string, deletedAt time.Time) error
}

// GptRepositoryFacade combines all GPT repository interfaces.
type GptRepositoryFacade interface {
	GptReader
	GptWriter
}
