package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, ownerID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, from, to)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, ownerID, transactionID string, deletedAt time.Time) error {
	args := m.Called(ctx, ownerID, transactionID, deletedAt)
	return args.Error(0)
}

// --- Mock GptRepository ---
type MockGptRepository struct {
	mock.Mock
}

func (m *MockGptRepository) FindGptByID(ctx context.Context, gptID string) (*domain.Gpt, error) {
	args := m.Called(ctx, gptID)
	var gpt *domain.Gpt
	if args.Get(0) != nil {
		gpt = args.Get(0).(*domain.Gpt)
	}
	return gpt, args.Error(1)
}

func (m *MockGptRepository) FindGptByName(ctx context.Context, ownerID, name string) (*domain.Gpt, error) {
	args := m.Called(ctx, ownerID, name)
	var gpt *domain.Gpt
	if args.Get(0) != nil {
		gpt = args.Get(0).(*domain.Gpt)
	}
	return gpt, args.Error(1)
}

func (m *MockGptRepository) FindVisibleGpts(ctx context.Context, ownerID string, query domain.ListQuery) ([]domain.Gpt, int, error) {
	args := m.Called(ctx, ownerID, query)
	var gpts []domain.Gpt
	if args.Get(0) != nil {
		gpts = args.Get(0).([]domain.Gpt)
	}
	return gpts, args.Int(1), args.Error(2)
}

func (m *MockGptRepository) SaveGpt(ctx context.Context, gpt domain.Gpt) error {
	args := m.Called(ctx, gpt)
	return args.Error(0)
}

func (m *MockGptRepository) UpdateGpt(ctx context.Context, gpt domain.Gpt) error {
	args := m.Called(ctx, gpt)
	return args.Error(0)
}

func (m *MockGptRepository) MarkGptDeleted(ctx context.Context, ownerID, gptID string, deletedAt time.Time) error {
	args := m.Called(ctx, ownerID, gptID, deletedAt)
	return args.Error(0)
}
