package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var budgetColumns = []any{"id", "space_id", "monthly_budget", "created_at", "updated_at"}

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

var _ IBudgetTable = (*BudgetsTable)(nil)

func NewBudgetsTable(db *sql.DB) BudgetsTable {
	return BudgetsTable{exec: bob.NewDB(db)}
}

func (t *BudgetsTable) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}

// Upsert relies on the unique space_id constraint, so concurrent writers resolve last-write-wins.
func (t *BudgetsTable) Upsert(ctx context.Context, spaceID uuid.UUID, monthlyBudget decimal.Decimal) (*Budget, error) {
	q := psql.Insert(
		im.Into("budgets", "space_id", "monthly_budget", "updated_at"),
		im.Values(psql.Arg(spaceID), psql.Arg(monthlyBudget), psql.Arg(time.Now().UTC())),
		im.OnConflict("space_id").DoUpdate(
			im.SetExcluded("monthly_budget", "updated_at"),
		),
		im.Returning(budgetColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
}

func (t *BudgetsTable) Delete(ctx context.Context, spaceID uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
