package pgsql

import (
	portsrepo "github.com/SscSPs/finance_assistant_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		GptRepo:         newPgxGptRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
