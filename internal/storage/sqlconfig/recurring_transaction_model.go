package sqlconfig

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// RecurringTransaction represents a recurring schedule record. ID is free text
// because shadow records use the "regular-<transactionID>" convention.
type RecurringTransaction struct {
	ID            string          `json:"id"`
	SpaceID       uuid.UUID       `json:"space_id"`
	Name          string          `json:"name"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Subcategory   *string         `json:"subcategory"`
	Description   *string         `json:"description"`
	Frequency     Frequency       `json:"frequency"`
	StartDate     civil.Date      `json:"start_date"`
	NextDueDate   civil.Date      `json:"next_due_date"`
	IsActive      bool            `json:"is_active"`
	LastProcessed *civil.Date     `json:"last_processed"`
	Source        RecurringSource `json:"source"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecurringTransactionCreate is the input for inserting a schedule. ID is required.
type RecurringTransactionCreate struct {
	ID          string          `json:"id"`
	SpaceID     uuid.UUID       `json:"space_id"`
	Name        string          `json:"name"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Subcategory *string         `json:"subcategory,omitempty"`
	Description *string         `json:"description,omitempty"`
	Frequency   Frequency       `json:"frequency"`
	StartDate   civil.Date      `json:"start_date"`
	NextDueDate civil.Date      `json:"next_due_date"`
	IsActive    bool            `json:"is_active"`
	Source      RecurringSource `json:"source"`
}

// RecurringTransactionUpdate carries the columns to change. Nil fields are left untouched.
type RecurringTransactionUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Type        *TransactionType `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Subcategory *string          `json:"subcategory,omitempty"`
	Description *string          `json:"description,omitempty"`
	Frequency   *Frequency       `json:"frequency,omitempty"`
	StartDate   *civil.Date      `json:"start_date,omitempty"`
	NextDueDate *civil.Date      `json:"next_due_date,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// IRecurringTransactionTable defines the storage operations for recurring schedules.
//
//go:generate mockery --name IRecurringTransactionTable --output mock_IRecurringTransactionTable.go
type IRecurringTransactionTable interface {
	Insert(ctx context.Context, create *RecurringTransactionCreate) (*RecurringTransaction, error)
	FindByID(ctx context.Context, spaceID uuid.UUID, id string) (*RecurringTransaction, error)
	// List returns the space's schedules newest-created first. A nil source returns every source.
	List(ctx context.Context, spaceID uuid.UUID, source *RecurringSource) ([]*RecurringTransaction, error)
	// ListDue returns active schedules with next_due_date on or before asOf.
	ListDue(ctx context.Context, spaceID uuid.UUID, asOf civil.Date) ([]*RecurringTransaction, error)
	Update(ctx context.Context, spaceID uuid.UUID, id string, update *RecurringTransactionUpdate) (*RecurringTransaction, error)
	// Advance records a processed cycle.
	Advance(ctx context.Context, id string, lastProcessed, nextDueDate civil.Date) error
	// Delete is unconditional and reports no error when nothing matched.
	Delete(ctx context.Context, spaceID uuid.UUID, id string) error
}
