package services

import (
	"context"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
)

// GptReaderSvc defines read operations for GPT configurations.
type GptReaderSvc interface {
	GetGptByID(ctx context.Context, userID, gptID string) (*domain.Gpt, error)
	ListGpts(ctx context.Context, userID string, params dto.ListGptsParams) (*dto.ListGptsResponse, error)
}

// GptWriterSvc defines write operations for GPT configurations.
type GptWriterSvc interface {
	CreateGpt(ctx context.Context, ownerID string, req dto.CreateGptRequest) (*domain.Gpt, error)
	UpdateGpt(ctx context.Context, ownerID, gptID string, req dto.UpdateGptRequest) (*domain.Gpt, error)
	DeleteGpt(ctx context.Context, ownerID, gptID string) error
}

// GptSvcFacade combines all GPT service interfaces.
type GptSvcFacade interface {
	GptReaderSvc
	GptWriterSvc
}
