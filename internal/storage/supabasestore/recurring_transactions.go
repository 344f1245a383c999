package supabasestore

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

type RecurringTransactionsTable struct {
	client *supabase.Client
}

var _ sqlconfig.IRecurringTransactionTable = (*RecurringTransactionsTable)(nil)

func NewRecurringTransactionsTable(client *supabase.Client) *RecurringTransactionsTable {
	return &RecurringTransactionsTable{client: client}
}

type recurringAdvance struct {
	LastProcessed civil.Date `json:"last_processed"`
	NextDueDate   civil.Date `json:"next_due_date"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (t *RecurringTransactionsTable) Insert(_ context.Context, create *sqlconfig.RecurringTransactionCreate) (*sqlconfig.RecurringTransaction, error) {
	data, _, err := t.client.From("recurring_transactions").Insert(create, false, "", representation, "").Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.RecurringTransaction](data)
}

func (t *RecurringTransactionsTable) FindByID(_ context.Context, spaceID uuid.UUID, id string) (*sqlconfig.RecurringTransaction, error) {
	data, _, err := t.client.From("recurring_transactions").
		Select("*", "", false).
		Eq("space_id", spaceID.String()).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.RecurringTransaction](data)
}

func (t *RecurringTransactionsTable) List(_ context.Context, spaceID uuid.UUID, source *sqlconfig.RecurringSource) ([]*sqlconfig.RecurringTransaction, error) {
	query := t.client.From("recurring_transactions").
		Select("*", "", false).
		Eq("space_id", spaceID.String())
	if source != nil {
		query = query.Eq("source", string(*source))
	}
	data, _, err := query.Order("created_at", newestFirst).Execute()
	if err != nil {
		return nil, err
	}
	return decodeRows[sqlconfig.RecurringTransaction](data)
}

func (t *RecurringTransactionsTable) ListDue(_ context.Context, spaceID uuid.UUID, asOf civil.Date) ([]*sqlconfig.RecurringTransaction, error) {
	data, _, err := t.client.From("recurring_transactions").
		Select("*", "", false).
		Eq("space_id", spaceID.String()).
		Eq("is_active", "true").
		Lte("next_due_date", asOf.String()).
		Order("next_due_date", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, err
	}
	return decodeRows[sqlconfig.RecurringTransaction](data)
}

func (t *RecurringTransactionsTable) Update(_ context.Context, spaceID uuid.UUID, id string, update *sqlconfig.RecurringTransactionUpdate) (*sqlconfig.RecurringTransaction, error) {
	data, _, err := t.client.From("recurring_transactions").
		Update(update, representation, "").
		Eq("space_id", spaceID.String()).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.RecurringTransaction](data)
}

func (t *RecurringTransactionsTable) Advance(_ context.Context, id string, lastProcessed, nextDueDate civil.Date) error {
	payload := recurringAdvance{
		LastProcessed: lastProcessed,
		NextDueDate:   nextDueDate,
		UpdatedAt:     time.Now().UTC(),
	}
	_, _, err := t.client.From("recurring_transactions").
		Update(payload, "", "").
		Eq("id", id).
		Execute()
	return err
}

func (t *RecurringTransactionsTable) Delete(_ context.Context, spaceID uuid.UUID, id string) error {
	_, _, err := t.client.From("recurring_transactions").
		Delete("", "").
		Eq("space_id", spaceID.String()).
		Eq("id", id).
		Execute()
	return err
}
