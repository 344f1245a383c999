package sqlconfig

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID                  uuid.UUID       `json:"id"`
	SpaceID             uuid.UUID       `json:"space_id"`
	Type                TransactionType `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	Category            string          `json:"category"`
	Subcategory         *string         `json:"subcategory"`
	Description         *string         `json:"description"`
	Date                civil.Date      `json:"date"`
	IsRecurring         bool            `json:"is_recurring"`
	RecurrenceFrequency *Frequency      `json:"recurrence_frequency"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	SpaceID             uuid.UUID       `json:"space_id"`
	Type                TransactionType `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	Category            string          `json:"category"`
	Subcategory         *string         `json:"subcategory,omitempty"`
	Description         *string         `json:"description,omitempty"`
	Date                civil.Date      `json:"date"`
	IsRecurring         bool            `json:"is_recurring"`
	RecurrenceFrequency *Frequency      `json:"recurrence_frequency,omitempty"`
}

// TransactionUpdate carries the columns to change. Nil fields are left untouched.
type TransactionUpdate struct {
	Type                *TransactionType `json:"type,omitempty"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	Category            *string          `json:"category,omitempty"`
	Subcategory         *string          `json:"subcategory,omitempty"`
	Description         *string          `json:"description,omitempty"`
	Date                *civil.Date      `json:"date,omitempty"`
	IsRecurring         *bool            `json:"is_recurring,omitempty"`
	RecurrenceFrequency *Frequency       `json:"recurrence_frequency,omitempty"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// TransactionFilter narrows a paged listing. Limit and Offset are always applied.
type TransactionFilter struct {
	Type      *TransactionType
	Category  *string
	StartDate *civil.Date
	EndDate   *civil.Date
	Search    *string
	Limit     int
	Offset    int
}

// ITransactionTable defines the interface for transaction storage operations.
// Every call is scoped to a single space.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	FindByID(ctx context.Context, spaceID, id uuid.UUID) (*Transaction, error)
	// List returns one page ordered by date then created_at, newest first,
	// together with the number of rows matching the filter.
	List(ctx context.Context, spaceID uuid.UUID, filter *TransactionFilter) ([]*Transaction, int, error)
	// ListAll returns every transaction of the space, ignoring any filter.
	ListAll(ctx context.Context, spaceID uuid.UUID) ([]*Transaction, error)
	Update(ctx context.Context, spaceID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, spaceID, id uuid.UUID) error
}
