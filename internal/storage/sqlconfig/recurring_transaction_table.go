package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var recurringColumns = []any{
	"id", "space_id", "name", "type", "amount", "category", "subcategory", "description",
	"frequency", "start_date", "next_due_date", "is_active", "last_processed", "source",
	"created_at", "updated_at",
}

type recurringTransactionRow struct {
	ID            string          `db:"id"`
	SpaceID       uuid.UUID       `db:"space_id"`
	Name          string          `db:"name"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Subcategory   *string         `db:"subcategory"`
	Description   *string         `db:"description"`
	Frequency     Frequency       `db:"frequency"`
	StartDate     time.Time       `db:"start_date"`
	NextDueDate   time.Time       `db:"next_due_date"`
	IsActive      bool            `db:"is_active"`
	LastProcessed *time.Time      `db:"last_processed"`
	Source        RecurringSource `db:"source"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// RecurringTransactionsTable provides access to the recurring_transactions table.
type RecurringTransactionsTable struct {
	exec bob.Executor
}

var _ IRecurringTransactionTable = (*RecurringTransactionsTable)(nil)

func NewRecurringTransactionsTable(db *sql.DB) RecurringTransactionsTable {
	return RecurringTransactionsTable{exec: bob.NewDB(db)}
}

func (t *RecurringTransactionsTable) Insert(ctx context.Context, create *RecurringTransactionCreate) (*RecurringTransaction, error) {
	q := psql.Insert(
		im.Into("recurring_transactions", "id", "space_id", "name", "type", "amount", "category",
			"subcategory", "description", "frequency", "start_date", "next_due_date", "is_active", "source"),
		im.Values(
			psql.Arg(create.ID),
			psql.Arg(create.SpaceID),
			psql.Arg(create.Name),
			psql.Arg(create.Type),
			psql.Arg(create.Amount),
			psql.Arg(create.Category),
			psql.Arg(create.Subcategory),
			psql.Arg(create.Description),
			psql.Arg(create.Frequency),
			psql.Arg(create.StartDate.String()),
			psql.Arg(create.NextDueDate.String()),
			psql.Arg(create.IsActive),
			psql.Arg(create.Source),
		),
		im.Returning(recurringColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*recurringTransactionRow]())
	if err != nil {
		return nil, err
	}
	return row.toRecurringTransaction(), nil
}

func (t *RecurringTransactionsTable) FindByID(ctx context.Context, spaceID uuid.UUID, id string) (*RecurringTransaction, error) {
	q := psql.Select(
		sm.Columns(recurringColumns...),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*recurringTransactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toRecurringTransaction(), nil
}

func (t *RecurringTransactionsTable) List(ctx context.Context, spaceID uuid.UUID, source *RecurringSource) ([]*RecurringTransaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(recurringColumns...),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
	}
	if source != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("source").EQ(psql.Arg(*source))))
	}
	queryMods = append(queryMods, sm.OrderBy("created_at").Desc())

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*recurringTransactionRow]())
	if err != nil {
		return nil, err
	}
	return recurringRowsToRecurringTransactions(rows), nil
}

func (t *RecurringTransactionsTable) ListDue(ctx context.Context, spaceID uuid.UUID, asOf civil.Date) ([]*RecurringTransaction, error) {
	q := psql.Select(
		sm.Columns(recurringColumns...),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("next_due_date").LTE(psql.Arg(asOf.String()))),
		sm.OrderBy("next_due_date").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*recurringTransactionRow]())
	if err != nil {
		return nil, err
	}
	return recurringRowsToRecurringTransactions(rows), nil
}

func (t *RecurringTransactionsTable) Update(ctx context.Context, spaceID uuid.UUID, id string, update *RecurringTransactionUpdate) (*RecurringTransaction, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("recurring_transactions"),
		um.SetCol("updated_at").ToArg(update.UpdatedAt),
	}
	if update.Name != nil {
		mods = append(mods, um.SetCol("name").ToArg(*update.Name))
	}
	if update.Type != nil {
		mods = append(mods, um.SetCol("type").ToArg(*update.Type))
	}
	if update.Amount != nil {
		mods = append(mods, um.SetCol("amount").ToArg(*update.Amount))
	}
	if update.Category != nil {
		mods = append(mods, um.SetCol("category").ToArg(*update.Category))
	}
	if update.Subcategory != nil {
		mods = append(mods, um.SetCol("subcategory").ToArg(*update.Subcategory))
	}
	if update.Description != nil {
		mods = append(mods, um.SetCol("description").ToArg(*update.Description))
	}
	if update.Frequency != nil {
		mods = append(mods, um.SetCol("frequency").ToArg(*update.Frequency))
	}
	if update.StartDate != nil {
		mods = append(mods, um.SetCol("start_date").ToArg(update.StartDate.String()))
	}
	if update.NextDueDate != nil {
		mods = append(mods, um.SetCol("next_due_date").ToArg(update.NextDueDate.String()))
	}
	if update.IsActive != nil {
		mods = append(mods, um.SetCol("is_active").ToArg(*update.IsActive))
	}
	mods = append(mods,
		um.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(recurringColumns...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[*recurringTransactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toRecurringTransaction(), nil
}

func (t *RecurringTransactionsTable) Advance(ctx context.Context, id string, lastProcessed, nextDueDate civil.Date) error {
	q := psql.Update(
		um.Table("recurring_transactions"),
		um.SetCol("last_processed").ToArg(lastProcessed.String()),
		um.SetCol("next_due_date").ToArg(nextDueDate.String()),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *RecurringTransactionsTable) Delete(ctx context.Context, spaceID uuid.UUID, id string) error {
	q := psql.Delete(
		dm.From("recurring_transactions"),
		dm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (r *recurringTransactionRow) toRecurringTransaction() *RecurringTransaction {
	rt := &RecurringTransaction{
		ID:          r.ID,
		SpaceID:     r.SpaceID,
		Name:        r.Name,
		Type:        r.Type,
		Amount:      r.Amount,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Description: r.Description,
		Frequency:   r.Frequency,
		StartDate:   civil.DateOf(r.StartDate),
		NextDueDate: civil.DateOf(r.NextDueDate),
		IsActive:    r.IsActive,
		Source:      r.Source,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.LastProcessed != nil {
		lastProcessed := civil.DateOf(*r.LastProcessed)
		rt.LastProcessed = &lastProcessed
	}
	return rt
}

func recurringRowsToRecurringTransactions(rows []*recurringTransactionRow) []*RecurringTransaction {
	result := make([]*RecurringTransaction, len(rows))
	for i, row := range rows {
		result[i] = row.toRecurringTransaction()
	}
	return result
}
