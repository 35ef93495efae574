package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	var resp *dto.ListTransactionsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.ListTransactionsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockTransactionService) ListUpcomingTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	var resp *dto.ListTransactionsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.ListTransactionsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetSummary(ctx context.Context, ownerID string, start, end *time.Time) (*domain.Summary, error) {
	args := m.Called(ctx, ownerID, start, end)
	var s *domain.Summary
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Summary)
	}
	return s, args.Error(1)
}

type MockGptService struct {
	mock.Mock
}

func (m *MockGptService) GetGptByID(ctx context.Context, userID, gptID string) (*domain.Gpt, error) {
	args := m.Called(ctx, userID, gptID)
	var g *domain.Gpt
	if args.Get(0) != nil {
		g = args.Get(0).(*domain.Gpt)
	}
	return g, args.Error(1)
}

func (m *MockGptService) ListGpts(ctx context.Context, userID string, params dto.ListGptsParams) (*dto.ListGptsResponse, error) {
	args := m.Called(ctx, userID, params)
	var resp *dto.ListGptsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.ListGptsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockGptService) CreateGpt(ctx context.Context, ownerID string, req dto.CreateGptRequest) (*domain.Gpt, error) {
	args := m.Called(ctx, ownerID, req)
	var g *domain.Gpt
	if args.Get(0) != nil {
		g = args.Get(0).(*domain.Gpt)
	}
	return g, args.Error(1)
}

func (m *MockGptService) UpdateGpt(ctx context.Context, ownerID, gptID string, req dto.UpdateGptRequest) (*domain.Gpt, error) {
	args := m.Called(ctx, ownerID, gptID, req)
	var g *domain.Gpt
	if args.Get(0) != nil {
		g = args.Get(0).(*domain.Gpt)
	}
	return g, args.Error(1)
}

func (m *MockGptService) DeleteGpt(ctx context.Context, ownerID, gptID string) error {
	args := m.Called(ctx, ownerID, gptID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)
	_ portssvc.SummarySvc           = (*MockSummaryService)(nil)
	_ portssvc.GptSvcFacade         = (*MockGptService)(nil)
	_ portssvc.UserSvcFacade        = (*MockUserService)(nil)
	_ portssvc.TokenSvc             = (*MockTokenService)(nil)
)
