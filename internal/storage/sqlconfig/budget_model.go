package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget is the single monthly budget row of a space.
type Budget struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	SpaceID       uuid.UUID       `db:"space_id" json:"space_id"`
	MonthlyBudget decimal.Decimal `db:"monthly_budget" json:"monthly_budget"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// IBudgetTable defines the storage operations for budgets.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) (*Budget, error)
	// Upsert inserts the budget or overwrites the existing row of the space.
	Upsert(ctx context.Context, spaceID uuid.UUID, monthlyBudget decimal.Decimal) (*Budget, error)
	// Delete is a no-op when the space has no budget.
	Delete(ctx context.Context, spaceID uuid.UUID) error
}
