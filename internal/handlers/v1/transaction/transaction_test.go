package transaction

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

// mockTransactionService implements every narrow interface of this package.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, spaceID uuid.UUID, in service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, spaceID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, spaceID uuid.UUID, filter service.TransactionListFilter) (*service.TransactionList, error) {
	args := m.Called(ctx, spaceID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransactionList), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, spaceID, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error) {
	args := m.Called(ctx, spaceID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, spaceID, id uuid.UUID) error {
	args := m.Called(ctx, spaceID, id)
	return args.Error(0)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	response.Install(false)
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func sampleTransaction(spaceID uuid.UUID) *service.Transaction {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return &service.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		SpaceID:   spaceID,
		Type:      service.TransactionTypeExpense,
		Amount:    decimal.RequireFromString("42.5"),
		Category:  "Groceries",
		Date:      civil.Date{Year: 2024, Month: time.January, Day: 15},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
