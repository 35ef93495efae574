package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/google/uuid"
)

const (
	defaultGptImage       = 1
	defaultGptTemperature = 0.5
	defaultGptOrderBy     = "created_at"
)

// gptService implements the GptSvcFacade interface
type gptService struct {
	BaseService
	gptRepo portsrepo.GptRepositoryFacade
}

// NewGptService creates a new GPT configuration service.
func NewGptService(repo portsrepo.GptRepositoryFacade) portssvc.GptSvcFacade {
	return &gptService{gptRepo: repo}
}

var _ portssvc.GptSvcFacade = (*gptService)(nil)

func (s *gptService) CreateGpt(ctx context.Context, ownerID string, req dto.CreateGptRequest) (*domain.Gpt, error) {
	if err := s.ensureNameAvailable(ctx, ownerID, req.Name, ""); err != nil {
		return nil, err
	}

	now := s.Now()
	gpt := domain.Gpt{
		GptID:        uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Image:        defaultGptImage,
		Description:  req.Description,
		Goal:         req.Goal,
		Temperature:  defaultGptTemperature,
		Capabilities: req.Capabilities,
		Limitations:  req.Limitations,
		IsPublic:     true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if req.Image != nil {
		gpt.Image = *req.Image
	}
	if req.Temperature != nil {
		gpt.Temperature = *req.Temperature
	}
	if req.IsPublic != nil {
		gpt.IsPublic = *req.IsPublic
	}

	if err := gpt.Validate(); err != nil {
		return nil, err
	}

	if err := s.gptRepo.SaveGpt(ctx, gpt); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save GPT in repository", slog.String("gpt_id", gpt.GptID))
		}
		return nil, fmt.Errorf("failed to create gpt: %w", err)
	}

	s.LogInfo(ctx, "GPT created successfully", slog.String("gpt_id", gpt.GptID))
	return &gpt, nil
}

func (s *gptService) GetGptByID(ctx context.Context, userID, gptID string) (*domain.Gpt, error) {
	gpt, err := s.findGpt(ctx, gptID)
	if err != nil {
		return nil, err
	}
	// Private configurations of other users are reported as missing
	if !gpt.IsVisibleTo(userID) {
		return nil, apperrors.ErrNotFound
	}
	return gpt, nil
}

func (s *gptService) ListGpts(ctx context.Context, userID string, params dto.ListGptsParams) (*dto.ListGptsResponse, error) {
	query := params.ToListQuery(defaultGptOrderBy)
	if err := domain.ValidateOrderBy(query.OrderBy, domain.GptSortFields); err != nil {
		return nil, err
	}

	gpts, total, err := s.gptRepo.FindVisibleGpts(ctx, userID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list GPTs from repository", slog.Int("page", query.Page), slog.Int("limit", query.Limit))
		return nil, fmt.Errorf("failed to list gpts: %w", err)
	}
	if gpts == nil {
		gpts = []domain.Gpt{}
	}
	return dto.ToListGptsResponse(gpts, query, total), nil
}

func (s *gptService) UpdateGpt(ctx context.Context, ownerID, gptID string, req dto.UpdateGptRequest) (*domain.Gpt, error) {
	gpt, err := s.findOwnedGpt(ctx, ownerID, gptID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != gpt.Name {
		if err := s.ensureNameAvailable(ctx, ownerID, *req.Name, gpt.GptID); err != nil {
			return nil, err
		}
		gpt.Name = *req.Name
	}
	if req.Image != nil {
		gpt.Image = *req.Image
	}
	if req.Description != nil {
		gpt.Description = *req.Description
	}
	if req.Goal != nil {
		gpt.Goal = *req.Goal
	}
	if req.Temperature != nil {
		gpt.Temperature = *req.Temperature
	}
	if req.Capabilities != nil {
		gpt.Capabilities = req.Capabilities
	}
	if req.Limitations != nil {
		gpt.Limitations = req.Limitations
	}
	if req.IsPublic != nil {
		gpt.IsPublic = *req.IsPublic
	}
	gpt.UpdatedAt = s.Now()

	if err := gpt.Validate(); err != nil {
		return nil, err
	}

	if err := s.gptRepo.UpdateGpt(ctx, *gpt); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update GPT in repository", slog.String("gpt_id", gptID))
		}
		return nil, fmt.Errorf("failed to update gpt: %w", err)
	}

	s.LogInfo(ctx, "GPT updated successfully", slog.String("gpt_id", gptID))
	return gpt, nil
}

func (s *gptService) DeleteGpt(ctx context.Context, ownerID, gptID string) error {
	if _, err := s.findOwnedGpt(ctx, ownerID, gptID); err != nil {
		return err
	}
	if err := s.gptRepo.MarkGptDeleted(ctx, ownerID, gptID, s.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete GPT in repository", slog.String("gpt_id", gptID))
		}
		return fmt.Errorf("failed to delete gpt: %w", err)
	}

	s.LogInfo(ctx, "GPT deleted successfully", slog.String("gpt_id", gptID))
	return nil
}

func (s *gptService) findGpt(ctx context.Context, gptID string) (*domain.Gpt, error) {
	gpt, err := s.gptRepo.FindGptByID(ctx, gptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find GPT by ID in repository", slog.String("gpt_id", gptID))
		}
		return nil, err
	}
	return gpt, nil
}

// findOwnedGpt loads a configuration the caller is allowed to modify.
// Public configurations of other users yield ErrForbidden, private ones ErrNotFound.
func (s *gptService) findOwnedGpt(ctx context.Context, ownerID, gptID string) (*domain.Gpt, error) {
	gpt, err := s.findGpt(ctx, gptID)
	if err != nil {
		return nil, err
	}
	if gpt.OwnerID != ownerID {
		if gpt.IsPublic {
			return nil, fmt.Errorf("%w: only the owner may modify this gpt", apperrors.ErrForbidden)
		}
		return nil, apperrors.ErrNotFound
	}
	return gpt, nil
}

func (s *gptService) ensureNameAvailable(ctx context.Context, ownerID, name, exceptID string) error {
	existing, err := s.gptRepo.FindGptByName(ctx, ownerID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to check GPT name", slog.String("name", name))
		return fmt.Errorf("failed to check gpt name: %w", err)
	}
	if existing.GptID == exceptID {
		return nil
	}
	return fmt.Errorf("%w: a gpt named %q already exists", apperrors.ErrDuplicate, name)
}
