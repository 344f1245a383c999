package service

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

type (
	TransactionType = sqlconfig.TransactionType
	Frequency       = sqlconfig.Frequency
	RecurringSource = sqlconfig.RecurringSource
)

const (
	TransactionTypeIncome  = sqlconfig.TransactionTypeIncome
	TransactionTypeExpense = sqlconfig.TransactionTypeExpense

	FrequencyWeekly  = sqlconfig.FrequencyWeekly
	FrequencyMonthly = sqlconfig.FrequencyMonthly
	FrequencyYearly  = sqlconfig.FrequencyYearly

	RecurringSourceDedicated          = sqlconfig.RecurringSourceDedicated
	RecurringSourceRegularTransaction = sqlconfig.RecurringSourceRegularTransaction
)

// Space represents a space in the service layer.
type Space struct {
	ID        uuid.UUID
	SpaceID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID                  uuid.UUID
	SpaceID             uuid.UUID
	Type                TransactionType
	Amount              decimal.Decimal
	Category            string
	Subcategory         *string
	Description         *string
	Date                civil.Date
	IsRecurring         bool
	RecurrenceFrequency *Frequency
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TransactionInput is everything needed to create a transaction.
type TransactionInput struct {
	Type                TransactionType
	Amount              decimal.Decimal
	Category            string
	Subcategory         *string
	Description         *string
	Date                civil.Date
	IsRecurring         bool
	RecurrenceFrequency *Frequency
}

// TransactionPatch holds the fields to change. Nil means keep the stored value.
type TransactionPatch struct {
	Type                *TransactionType
	Amount              *decimal.Decimal
	Category            *string
	Subcategory         *string
	Description         *string
	Date                *civil.Date
	IsRecurring         *bool
	RecurrenceFrequency *Frequency
}

// TransactionListFilter enumerates every recognised listing filter.
type TransactionListFilter struct {
	Page      int
	Limit     int
	Type      *TransactionType
	Category  *string
	StartDate *civil.Date
	EndDate   *civil.Date
	Search    *string
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

type TransactionStats struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetAmount        decimal.Decimal
	TransactionCount int
}

type CategoryStat struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

type MonthlyStat struct {
	Month    string
	Year     int
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// TransactionList is one page plus aggregates over the whole space.
type TransactionList struct {
	Transactions  []Transaction
	Pagination    Pagination
	Stats         TransactionStats
	CategoryStats []CategoryStat
	MonthlyStats  []MonthlyStat
}

// Budget represents a budget in the service layer.
type Budget struct {
	ID            uuid.UUID
	SpaceID       uuid.UUID
	MonthlyBudget decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecurringTransaction represents a recurring schedule in the service layer.
type RecurringTransaction struct {
	ID            string
	SpaceID       uuid.UUID
	Name          string
	Type          TransactionType
	Amount        decimal.Decimal
	Category      string
	Subcategory   *string
	Description   *string
	Frequency     Frequency
	StartDate     civil.Date
	NextDueDate   civil.Date
	IsActive      bool
	LastProcessed *civil.Date
	Source        RecurringSource
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecurringTransactionInput is everything needed to create a schedule.
type RecurringTransactionInput struct {
	Name        string
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Subcategory *string
	Description *string
	Frequency   Frequency
	StartDate   civil.Date
}

// RecurringTransactionPatch holds the fields to change. Nil means keep the stored value.
type RecurringTransactionPatch struct {
	Name        *string
	Type        *TransactionType
	Amount      *decimal.Decimal
	Category    *string
	Subcategory *string
	Description *string
	Frequency   *Frequency
	StartDate   *civil.Date
	IsActive    *bool
}

// ProcessedRecurring pairs a schedule with the transaction it just produced.
type ProcessedRecurring struct {
	RecurringTransaction RecurringTransaction
	CreatedTransaction   Transaction
}

type ProcessResult struct {
	Processed    int
	Transactions []ProcessedRecurring
}

func spaceFromStorage(row *sqlconfig.Space) *Space {
	return &Space{
		ID:        row.ID,
		SpaceID:   row.SpaceID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:                  row.ID,
		SpaceID:             row.SpaceID,
		Type:                row.Type,
		Amount:              row.Amount,
		Category:            row.Category,
		Subcategory:         row.Subcategory,
		Description:         row.Description,
		Date:                row.Date,
		IsRecurring:         row.IsRecurring,
		RecurrenceFrequency: row.RecurrenceFrequency,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

func budgetFromStorage(row *sqlconfig.Budget) *Budget {
	return &Budget{
		ID:            row.ID,
		SpaceID:       row.SpaceID,
		MonthlyBudget: row.MonthlyBudget,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func recurringFromStorage(row *sqlconfig.RecurringTransaction) RecurringTransaction {
	return RecurringTransaction{
		ID:            row.ID,
		SpaceID:       row.SpaceID,
		Name:          row.Name,
		Type:          row.Type,
		Amount:        row.Amount,
		Category:      row.Category,
		Subcategory:   row.Subcategory,
		Description:   row.Description,
		Frequency:     row.Frequency,
		StartDate:     row.StartDate,
		NextDueDate:   row.NextDueDate,
		IsActive:      row.IsActive,
		LastProcessed: row.LastProcessed,
		Source:        row.Source,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
