package dto

import (
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/SscSPs/finance_assistant_app/internal/utils/pagination"
)

// CreateGptRequest defines the data needed to create a GPT configuration.
type CreateGptRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=100"`
	Image        *int     `json:"image" binding:"omitempty,min=0,max=21"` // Defaults to 1
	Description  string   `json:"description" binding:"required,min=1,max=500"`
	Goal         string   `json:"goal" binding:"required,min=1,max=200"`
	Temperature  *float64 `json:"temperature" binding:"omitempty,min=0,max=1"` // Defaults to 0.5
	Capabilities []string `json:"capabilities" binding:"required,min=1,max=10,dive,required"`
	Limitations  []string `json:"limitations" binding:"required,min=1,max=10,dive,required"`
	IsPublic     *bool    `json:"is_public"` // Defaults to true
}

// UpdateGptRequest defines the data allowed for updating a GPT configuration.
type UpdateGptRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Image        *int     `json:"image" binding:"omitempty,min=0,max=21"`
	Description  *string  `json:"description" binding:"omitempty,min=1,max=500"`
	Goal         *string  `json:"goal" binding:"omitempty,min=1,max=200"`
	Temperature  *float64 `json:"temperature" binding:"omitempty,min=0,max=1"`
	Capabilities []string `json:"capabilities" binding:"omitempty,min=1,max=10,dive,required"`
	Limitations  []string `json:"limitations" binding:"omitempty,min=1,max=10,dive,required"`
	IsPublic     *bool    `json:"is_public"`
}

// ListGptsParams defines query parameters for listing GPT configurations.
type ListGptsParams struct {
	PageOptions
}

// GptResponse defines the data returned for a GPT configuration.
type GptResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Image        int       `json:"image"`
	Description  string    `json:"description"`
	Goal         string    `json:"goal"`
	Temperature  float64   `json:"temperature"`
	Capabilities []string  `json:"capabilities"`
	Limitations  []string  `json:"limitations"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListGptsResponse wraps a page of GPT configurations.
type ListGptsResponse struct {
	Data []GptResponse   `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// ToGptResponse converts a domain.Gpt to GptResponse DTO.
func ToGptResponse(g *domain.Gpt) GptResponse {
	return GptResponse{
		ID:           g.GptID,
		UserID:       g.OwnerID,
		Name:         g.Name,
		Image:        g.Image,
		Description:  g.Description,
		Goal:         g.Goal,
		Temperature:  g.Temperature,
		Capabilities: g.Capabilities,
		Limitations:  g.Limitations,
		IsPublic:     g.IsPublic,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// ToListGptsResponse builds a page response from a slice and its total count.
func ToListGptsResponse(gpts []domain.Gpt, query domain.ListQuery, itemCount int) *ListGptsResponse {
	data := make([]GptResponse, len(gpts))
	for i := range gpts {
		data[i] = ToGptResponse(&gpts[i])
	}
	return &ListGptsResponse{
		Data: data,
		Meta: pagination.NewMeta(query.Page, query.Limit, itemCount),
	}
}
