package supabasestore

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/supabase-community/supabase-go"

	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

type BudgetsTable struct {
	client *supabase.Client
}

var _ sqlconfig.IBudgetTable = (*BudgetsTable)(nil)

func NewBudgetsTable(client *supabase.Client) *BudgetsTable {
	return &BudgetsTable{client: client}
}

type budgetUpsert struct {
	SpaceID       uuid.UUID       `json:"space_id"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (t *BudgetsTable) FindBySpaceID(_ context.Context, spaceID uuid.UUID) (*sqlconfig.Budget, error) {
	data, _, err := t.client.From("budgets").
		Select("*", "", false).
		Eq("space_id", spaceID.String()).
		Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.Budget](data)
}

func (t *BudgetsTable) Upsert(_ context.Context, spaceID uuid.UUID, monthlyBudget decimal.Decimal) (*sqlconfig.Budget, error) {
	payload := budgetUpsert{
		SpaceID:       spaceID,
		MonthlyBudget: monthlyBudget,
		UpdatedAt:     time.Now().UTC(),
	}
	data, _, err := t.client.From("budgets").Upsert(payload, "space_id", representation, "").Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.Budget](data)
}

func (t *BudgetsTable) Delete(_ context.Context, spaceID uuid.UUID) error {
	_, _, err := t.client.From("budgets").
		Delete("", "").
		Eq("space_id", spaceID.String()).
		Execute()
	return err
}
