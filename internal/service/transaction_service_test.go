package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	row := transactionRow(spaceID, TransactionTypeExpense, "42.50", "Groceries", date("2024-01-15"))

	m.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.SpaceID == spaceID &&
			c.Type == TransactionTypeExpense &&
			c.Amount.Equal(decimal.RequireFromString("42.50")) &&
			c.Category == "Groceries" &&
			c.Date == date("2024-01-15")
	})).Return(row, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.TypeTransactionCreated && e.SpaceID == spaceID.String()
	})).Return(nil)

	tx, err := svc.Transaction.CreateTransaction(context.Background(), spaceID, TransactionInput{
		Type:     TransactionTypeExpense,
		Amount:   decimal.RequireFromString("42.50"),
		Category: "Groceries",
		Date:     date("2024-01-15"),
	})

	require.NoError(t, err)
	assert.Equal(t, row.ID, tx.ID)
	assert.False(t, tx.IsRecurring)
}

func TestCreateTransaction_RecurringCreatesShadow(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	row := transactionRow(spaceID, TransactionTypeExpense, "1200", "Rent", date("2024-01-15"))
	row.IsRecurring = true
	row.RecurrenceFrequency = freqPtr(FrequencyMonthly)

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(row, nil)
	m.recurring.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.RecurringTransactionCreate) bool {
		return c.ID == "regular-"+row.ID.String() &&
			c.Name == "expense - Rent" &&
			c.Source == RecurringSourceRegularTransaction &&
			c.StartDate == date("2024-01-15") &&
			c.NextDueDate == date("2024-02-15") &&
			c.IsActive
	})).Return(&sqlconfig.RecurringTransaction{ID: "regular-" + row.ID.String()}, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Transaction.CreateTransaction(context.Background(), spaceID, TransactionInput{
		Type:                TransactionTypeExpense,
		Amount:              decimal.RequireFromString("1200"),
		Category:            "Rent",
		Date:                date("2024-01-15"),
		IsRecurring:         true,
		RecurrenceFrequency: freqPtr(FrequencyMonthly),
	})

	assert.NoError(t, err)
}

func TestCreateTransaction_ShadowNameUsesDescription(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	row := transactionRow(spaceID, TransactionTypeIncome, "3000", "Salary", date("2024-01-31"))
	row.IsRecurring = true
	row.RecurrenceFrequency = freqPtr(FrequencyMonthly)
	row.Description = strPtr("Paycheck")

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(row, nil)
	m.recurring.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.RecurringTransactionCreate) bool {
		return c.Name == "Paycheck" && c.NextDueDate == date("2024-02-29")
	})).Return(&sqlconfig.RecurringTransaction{}, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Transaction.CreateTransaction(context.Background(), spaceID, TransactionInput{
		Type:                TransactionTypeIncome,
		Amount:              decimal.RequireFromString("3000"),
		Category:            "Salary",
		Description:         strPtr("Paycheck"),
		Date:                date("2024-01-31"),
		IsRecurring:         true,
		RecurrenceFrequency: freqPtr(FrequencyMonthly),
	})

	assert.NoError(t, err)
}

func TestCreateTransaction_ShadowFailureDoesNotFail(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	row := transactionRow(spaceID, TransactionTypeExpense, "15", "Streaming", date("2024-01-01"))
	row.IsRecurring = true
	row.RecurrenceFrequency = freqPtr(FrequencyMonthly)

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(row, nil)
	m.recurring.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	tx, err := svc.Transaction.CreateTransaction(context.Background(), spaceID, TransactionInput{
		Type:                TransactionTypeExpense,
		Amount:              decimal.RequireFromString("15"),
		Category:            "Streaming",
		Date:                date("2024-01-01"),
		IsRecurring:         true,
		RecurrenceFrequency: freqPtr(FrequencyMonthly),
	})

	require.NoError(t, err)
	assert.Equal(t, row.ID, tx.ID)
}

func TestCreateTransaction_RecurringWithoutFrequencyHasNoShadow(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	row := transactionRow(spaceID, TransactionTypeExpense, "9.99", "Music", date("2024-01-01"))
	row.IsRecurring = true

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(row, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Transaction.CreateTransaction(context.Background(), spaceID, TransactionInput{
		Type:        TransactionTypeExpense,
		Amount:      decimal.RequireFromString("9.99"),
		Category:    "Music",
		Date:        date("2024-01-01"),
		IsRecurring: true,
	})

	assert.NoError(t, err)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Transaction.CreateTransaction(context.Background(), uuid.Must(uuid.NewV4()), TransactionInput{
		Type:     TransactionTypeExpense,
		Amount:   decimal.Zero,
		Category: "Food",
		Date:     date("2024-01-01"),
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestCreateTransaction_StorageError(t *testing.T) {
	svc, m := newTestService(t)

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	tx, err := svc.Transaction.CreateTransaction(context.Background(), uuid.Must(uuid.NewV4()), TransactionInput{
		Type:     TransactionTypeIncome,
		Amount:   decimal.RequireFromString("10.00"),
		Category: "Gift",
		Date:     date("2024-01-01"),
	})

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create transaction: connection refused", err.Error())
	assert.Nil(t, tx)
}

// -- GetTransaction tests --

func TestGetTransaction_NotFound(t *testing.T) {
	svc, m := newTestService(t)

	m.transactions.EXPECT().FindByID(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Transaction.GetTransaction(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Transaction not found", err.Error())
}

// -- ListTransactions tests --

func TestListTransactions_SecondPage(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	page := make([]*sqlconfig.Transaction, 10)
	all := make([]*sqlconfig.Transaction, 25)
	for i := range all {
		all[i] = transactionRow(spaceID, TransactionTypeExpense, "2", "Coffee", civil.Date{Year: 2024, Month: time.January, Day: 1 + i})
	}
	copy(page, all[10:20])

	m.transactions.EXPECT().List(mock.Anything, spaceID, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 10 && f.Offset == 10
	})).Return(page, 25, nil)
	m.transactions.EXPECT().ListAll(mock.Anything, spaceID).Return(all, nil)

	list, err := svc.Transaction.ListTransactions(context.Background(), spaceID, TransactionListFilter{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, list.Transactions, 10)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true}, list.Pagination)
	assert.Equal(t, 25, list.Stats.TransactionCount)
	assert.True(t, list.Stats.TotalExpenses.Equal(decimal.NewFromInt(50)))
	require.Len(t, list.CategoryStats, 1)
	assert.Equal(t, 25, list.CategoryStats[0].Count)
}

func TestListTransactions_DefaultsAndFilters(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	expense := TransactionTypeExpense

	m.transactions.EXPECT().List(mock.Anything, spaceID, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == DefaultLimit && f.Offset == 0 &&
			f.Type != nil && *f.Type == TransactionTypeExpense &&
			f.Search != nil && *f.Search == "coffee"
	})).Return([]*sqlconfig.Transaction{}, 0, nil)
	m.transactions.EXPECT().ListAll(mock.Anything, spaceID).Return([]*sqlconfig.Transaction{}, nil)

	list, err := svc.Transaction.ListTransactions(context.Background(), spaceID, TransactionListFilter{
		Type:   &expense,
		Search: strPtr("coffee"),
	})

	require.NoError(t, err)
	assert.Empty(t, list.Transactions)
	assert.NotNil(t, list.CategoryStats)
	assert.Empty(t, list.CategoryStats)
	assert.Equal(t, Pagination{Page: 1, Limit: 10}, list.Pagination)
}

func TestListTransactions_LimitTooLarge(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Transaction.ListTransactions(context.Background(), uuid.Must(uuid.NewV4()), TransactionListFilter{Limit: 101})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "limit", validationErr.Field)
}

func TestListTransactions_StatisticsQueryFails(t *testing.T) {
	svc, m := newTestService(t)

	m.transactions.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, 0, nil).Maybe()
	m.transactions.EXPECT().ListAll(mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := svc.Transaction.ListTransactions(context.Background(), uuid.Must(uuid.NewV4()), TransactionListFilter{})

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "list transactions for statistics", storageErr.Op)
}

// -- UpdateTransaction tests --

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc, m := newTestService(t)

	m.transactions.EXPECT().FindByID(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Transaction.UpdateTransaction(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), TransactionPatch{
		Category: strPtr("Food"),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTransaction_NoLongerRecurringDeletesShadow(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	before := transactionRow(spaceID, TransactionTypeExpense, "50", "Gym", date("2024-01-05"))
	before.IsRecurring = true
	before.RecurrenceFrequency = freqPtr(FrequencyMonthly)
	after := *before
	after.IsRecurring = false

	m.transactions.EXPECT().FindByID(mock.Anything, spaceID, before.ID).Return(before, nil)
	m.transactions.EXPECT().Update(mock.Anything, spaceID, before.ID, mock.MatchedBy(func(u *sqlconfig.TransactionUpdate) bool {
		return u.IsRecurring != nil && !*u.IsRecurring
	})).Return(&after, nil)
	m.recurring.EXPECT().Delete(mock.Anything, spaceID, "regular-"+before.ID.String()).Return(nil)

	notRecurring := false
	tx, err := svc.Transaction.UpdateTransaction(context.Background(), spaceID, before.ID, TransactionPatch{
		IsRecurring: &notRecurring,
	})

	require.NoError(t, err)
	assert.False(t, tx.IsRecurring)
}

func TestUpdateTransaction_UpdatesExistingShadow(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	before := transactionRow(spaceID, TransactionTypeExpense, "50", "Gym", date("2024-01-05"))
	before.IsRecurring = true
	before.RecurrenceFrequency = freqPtr(FrequencyMonthly)
	after := *before
	after.Amount = decimal.RequireFromString("65")
	shadowID := "regular-" + before.ID.String()
	lastProcessed := date("2024-02-05")

	m.transactions.EXPECT().FindByID(mock.Anything, spaceID, before.ID).Return(before, nil)
	m.transactions.EXPECT().Update(mock.Anything, spaceID, before.ID, mock.Anything).Return(&after, nil)
	m.recurring.EXPECT().FindByID(mock.Anything, spaceID, shadowID).Return(&sqlconfig.RecurringTransaction{
		ID:            shadowID,
		SpaceID:       spaceID,
		Frequency:     FrequencyMonthly,
		StartDate:     date("2024-01-05"),
		NextDueDate:   date("2024-03-05"),
		LastProcessed: &lastProcessed,
		Source:        RecurringSourceRegularTransaction,
	}, nil)
	m.recurring.EXPECT().Update(mock.Anything, spaceID, shadowID, mock.MatchedBy(func(u *sqlconfig.RecurringTransactionUpdate) bool {
		return u.Amount != nil && u.Amount.Equal(decimal.RequireFromString("65")) &&
			u.NextDueDate != nil && *u.NextDueDate == date("2024-03-05")
	})).Return(&sqlconfig.RecurringTransaction{ID: shadowID}, nil)

	amount := decimal.RequireFromString("65")
	_, err := svc.Transaction.UpdateTransaction(context.Background(), spaceID, before.ID, TransactionPatch{Amount: &amount})

	assert.NoError(t, err)
}

func TestUpdateTransaction_RecreatesMissingShadow(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	before := transactionRow(spaceID, TransactionTypeExpense, "20", "Phone", date("2024-01-10"))
	after := *before
	after.IsRecurring = true
	after.RecurrenceFrequency = freqPtr(FrequencyWeekly)
	shadowID := "regular-" + before.ID.String()

	m.transactions.EXPECT().FindByID(mock.Anything, spaceID, before.ID).Return(before, nil)
	m.transactions.EXPECT().Update(mock.Anything, spaceID, before.ID, mock.Anything).Return(&after, nil)
	m.recurring.EXPECT().FindByID(mock.Anything, spaceID, shadowID).Return(nil, sqlconfig.ErrNotFound)
	m.recurring.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.RecurringTransactionCreate) bool {
		return c.ID == shadowID && c.Frequency == FrequencyWeekly && c.NextDueDate == date("2024-01-17")
	})).Return(&sqlconfig.RecurringTransaction{ID: shadowID}, nil)

	recurring := true
	_, err := svc.Transaction.UpdateTransaction(context.Background(), spaceID, before.ID, TransactionPatch{
		IsRecurring:         &recurring,
		RecurrenceFrequency: freqPtr(FrequencyWeekly),
	})

	assert.NoError(t, err)
}

// -- DeleteTransaction tests --

func TestDeleteTransaction_RemovesShadow(t *testing.T) {
	svc, m := newTestService(t)

	spaceID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	m.transactions.EXPECT().Delete(mock.Anything, spaceID, id).Return(nil)
	m.recurring.EXPECT().Delete(mock.Anything, spaceID, "regular-"+id.String()).Return(errors.New("network"))

	assert.NoError(t, svc.Transaction.DeleteTransaction(context.Background(), spaceID, id))
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	svc, m := newTestService(t)

	m.transactions.EXPECT().Delete(mock.Anything, mock.Anything, mock.Anything).Return(sqlconfig.ErrNotFound)

	err := svc.Transaction.DeleteTransaction(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrNotFound)
}
