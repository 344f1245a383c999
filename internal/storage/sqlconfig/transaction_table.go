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
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var transactionColumns = []any{
	"id", "space_id", "type", "amount", "category", "subcategory", "description",
	"date", "is_recurring", "recurrence_frequency", "created_at", "updated_at",
}

// transactionRow mirrors the transactions table as lib/pq scans it.
type transactionRow struct {
	ID                  uuid.UUID       `db:"id"`
	SpaceID             uuid.UUID       `db:"space_id"`
	Type                TransactionType `db:"type"`
	Amount              decimal.Decimal `db:"amount"`
	Category            string          `db:"category"`
	Subcategory         *string         `db:"subcategory"`
	Description         *string         `db:"description"`
	Date                time.Time       `db:"date"`
	IsRecurring         bool            `db:"is_recurring"`
	RecurrenceFrequency *Frequency      `db:"recurrence_frequency"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

var _ ITransactionTable = (*TransactionsTable)(nil)

func NewTransactionsTable(db *sql.DB) TransactionsTable {
	return TransactionsTable{exec: bob.NewDB(db)}
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions", "space_id", "type", "amount", "category", "subcategory",
			"description", "date", "is_recurring", "recurrence_frequency"),
		im.Values(
			psql.Arg(create.SpaceID),
			psql.Arg(create.Type),
			psql.Arg(create.Amount),
			psql.Arg(create.Category),
			psql.Arg(create.Subcategory),
			psql.Arg(create.Description),
			psql.Arg(create.Date.String()),
			psql.Arg(create.IsRecurring),
			psql.Arg(create.RecurrenceFrequency),
		),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, err
	}
	return row.toTransaction(), nil
}

// FindByID retrieves a transaction by primary key within a space.
func (t *TransactionsTable) FindByID(ctx context.Context, spaceID, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toTransaction(), nil
}

// List returns one page of the space's transactions matching the filter, plus the match count.
func (t *TransactionsTable) List(ctx context.Context, spaceID uuid.UUID, filter *TransactionFilter) ([]*Transaction, int, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}
	whereMods := transactionWhere(spaceID, filter)

	countMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("count(*)"),
		sm.From("transactions"),
	}
	for _, w := range whereMods {
		countMods = append(countMods, w)
	}
	total, err := bob.One(ctx, t.exec, psql.Select(countMods...), scan.SingleColumnMapper[int])
	if err != nil {
		return nil, 0, err
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
	}
	for _, w := range whereMods {
		queryMods = append(queryMods, w)
	}
	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, 0, err
	}
	return transactionRowsToTransactions(rows), total, nil
}

// ListAll returns every transaction of the space in listing order.
func (t *TransactionsTable) ListAll(ctx context.Context, spaceID uuid.UUID) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, err
	}
	return transactionRowsToTransactions(rows), nil
}

// Update applies the non-nil fields of update and returns the stored row.
func (t *TransactionsTable) Update(ctx context.Context, spaceID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
		um.SetCol("updated_at").ToArg(update.UpdatedAt),
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
	if update.Date != nil {
		mods = append(mods, um.SetCol("date").ToArg(update.Date.String()))
	}
	if update.IsRecurring != nil {
		mods = append(mods, um.SetCol("is_recurring").ToArg(*update.IsRecurring))
	}
	if update.RecurrenceFrequency != nil {
		mods = append(mods, um.SetCol("recurrence_frequency").ToArg(*update.RecurrenceFrequency))
	}
	mods = append(mods,
		um.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[*transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toTransaction(), nil
}

// Delete removes a transaction, returning ErrNotFound when nothing matched.
func (t *TransactionsTable) Delete(ctx context.Context, spaceID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func transactionWhere(spaceID uuid.UUID, filter *TransactionFilter) []mods.Where[*dialect.SelectQuery] {
	where := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
	}
	if filter.Type != nil {
		where = append(where, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Category != nil {
		where = append(where, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	if filter.StartDate != nil {
		where = append(where, sm.Where(psql.Quote("date").GTE(psql.Arg(filter.StartDate.String()))))
	}
	if filter.EndDate != nil {
		where = append(where, sm.Where(psql.Quote("date").LTE(psql.Arg(filter.EndDate.String()))))
	}
	if filter.Search != nil {
		pattern := "%" + EscapeLike(*filter.Search) + "%"
		where = append(where, sm.Where(psql.Raw("(description ILIKE ? OR category ILIKE ?)", pattern, pattern)))
	}
	return where
}

func (r *transactionRow) toTransaction() *Transaction {
	return &Transaction{
		ID:                  r.ID,
		SpaceID:             r.SpaceID,
		Type:                r.Type,
		Amount:              r.Amount,
		Category:            r.Category,
		Subcategory:         r.Subcategory,
		Description:         r.Description,
		Date:                civil.DateOf(r.Date),
		IsRecurring:         r.IsRecurring,
		RecurrenceFrequency: r.RecurrenceFrequency,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func transactionRowsToTransactions(rows []*transactionRow) []*Transaction {
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = row.toTransaction()
	}
	return result
}
