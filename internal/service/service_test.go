package service

import (
	"io"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/storage"
	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

type testMocks struct {
	spaces       *sqlconfig.MockISpaceTable
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
	recurring    *sqlconfig.MockIRecurringTransactionTable
	publisher    *events.MockPublisher
}

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *testMocks) {
	t.Helper()
	mocks := &testMocks{
		spaces:       sqlconfig.NewMockISpaceTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
		recurring:    sqlconfig.NewMockIRecurringTransactionTable(t),
		publisher:    events.NewMockPublisher(t),
	}
	store := &storage.Storage{
		Spaces:                mocks.spaces,
		Transactions:          mocks.transactions,
		Budgets:               mocks.budgets,
		RecurringTransactions: mocks.recurring,
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := NewService(store, mocks.publisher, logger)
	svc.Recurring.now = func() time.Time { return fixedNow }
	return svc, mocks
}

func strPtr(s string) *string { return &s }

func freqPtr(f Frequency) *Frequency { return &f }

func transactionRow(spaceID uuid.UUID, txType TransactionType, amount, category string, d civil.Date) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		SpaceID:   spaceID,
		Type:      txType,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		Date:      d,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}
