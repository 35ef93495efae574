package services

import (
	portsrepo "github.com/SscSPs/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Summary:     NewSummaryService(repos.TransactionRepo),
		Gpt:         NewGptService(repos.GptRepo),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvc = (*tokenService)(nil)
)
