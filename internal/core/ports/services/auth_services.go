package services

import (
	"context"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
)

// TokenSvc issues access tokens for authenticated users.
type TokenSvc interface {
	// GenerateAccessToken returns a signed JWT for user and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
