package supabasestore

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

type TransactionsTable struct {
	client *supabase.Client
}

var _ sqlconfig.ITransactionTable = (*TransactionsTable)(nil)

func NewTransactionsTable(client *supabase.Client) *TransactionsTable {
	return &TransactionsTable{client: client}
}

func (t *TransactionsTable) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	data, _, err := t.client.From("transactions").Insert(create, false, "", representation, "").Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.Transaction](data)
}

func (t *TransactionsTable) FindByID(_ context.Context, spaceID, id uuid.UUID) (*sqlconfig.Transaction, error) {
	data, _, err := t.client.From("transactions").
		Select("*", "", false).
		Eq("space_id", spaceID.String()).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.Transaction](data)
}

func (t *TransactionsTable) List(_ context.Context, spaceID uuid.UUID, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, int, error) {
	if filter == nil {
		filter = &sqlconfig.TransactionFilter{}
	}

	query := t.client.From("transactions").
		Select("*", "exact", false).
		Eq("space_id", spaceID.String())
	query = applyTransactionFilter(query, filter)
	query = query.
		Order("date", newestFirst).
		Order("created_at", newestFirst)
	if filter.Limit > 0 {
		query = query.Range(filter.Offset, filter.Offset+filter.Limit-1, "")
	}

	data, count, err := query.Execute()
	if err != nil {
		return nil, 0, err
	}
	rows, err := decodeRows[sqlconfig.Transaction](data)
	if err != nil {
		return nil, 0, err
	}
	return rows, int(count), nil
}

func (t *TransactionsTable) ListAll(_ context.Context, spaceID uuid.UUID) ([]*sqlconfig.Transaction, error) {
	data, _, err := t.client.From("transactions").
		Select("*", "", false).
		Eq("space_id", spaceID.String()).
		Order("date", newestFirst).
		Order("created_at", newestFirst).
		Execute()
	if err != nil {
		return nil, err
	}
	return decodeRows[sqlconfig.Transaction](data)
}

func (t *TransactionsTable) Update(_ context.Context, spaceID, id uuid.UUID, update *sqlconfig.TransactionUpdate) (*sqlconfig.Transaction, error) {
	data, _, err := t.client.From("transactions").
		Update(update, representation, "").
		Eq("space_id", spaceID.String()).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.Transaction](data)
}

func (t *TransactionsTable) Delete(_ context.Context, spaceID, id uuid.UUID) error {
	data, _, err := t.client.From("transactions").
		Delete(representation, "").
		Eq("space_id", spaceID.String()).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return err
	}
	_, err = firstRow[sqlconfig.Transaction](data)
	return err
}

func applyTransactionFilter(query *postgrest.FilterBuilder, filter *sqlconfig.TransactionFilter) *postgrest.FilterBuilder {
	if filter.Type != nil {
		query = query.Eq("type", string(*filter.Type))
	}
	if filter.Category != nil {
		query = query.Eq("category", *filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Gte("date", filter.StartDate.String())
	}
	if filter.EndDate != nil {
		query = query.Lte("date", filter.EndDate.String())
	}
	if filter.Search != nil {
		query = query.Or(searchFilter(*filter.Search), "")
	}
	return query
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// searchFilter builds the or=() filter matching term as a case-insensitive
// substring of description or category. The pattern is double-quoted so commas
// and parentheses in term stay literal. PostgREST reads every * as %, so a
// literal asterisk can only be matched as any single character.
func searchFilter(term string) string {
	pattern := "*" + strings.ReplaceAll(sqlconfig.EscapeLike(term), "*", "_") + "*"
	quoted := `"` + quoteEscaper.Replace(pattern) + `"`
	return fmt.Sprintf("description.ilike.%s,category.ilike.%s", quoted, quoted)
}
