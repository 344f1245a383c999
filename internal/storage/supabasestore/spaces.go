package supabasestore

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/supabase-community/supabase-go"

	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

type SpacesTable struct {
	client *supabase.Client
}

var _ sqlconfig.ISpaceTable = (*SpacesTable)(nil)

func NewSpacesTable(client *supabase.Client) *SpacesTable {
	return &SpacesTable{client: client}
}

func (t *SpacesTable) Insert(_ context.Context, spaceID uuid.UUID) (*sqlconfig.Space, error) {
	payload := map[string]string{"space_id": spaceID.String()}
	data, _, err := t.client.From("spaces").Insert(payload, false, "", representation, "").Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.Space](data)
}

func (t *SpacesTable) FindBySpaceID(_ context.Context, spaceID uuid.UUID) (*sqlconfig.Space, error) {
	data, _, err := t.client.From("spaces").
		Select("*", "", false).
		Eq("space_id", spaceID.String()).
		Execute()
	if err != nil {
		return nil, err
	}
	return firstRow[sqlconfig.Space](data)
}

func (t *SpacesTable) Delete(_ context.Context, spaceID uuid.UUID) error {
	_, _, err := t.client.From("spaces").
		Delete("", "").
		Eq("space_id", spaceID.String()).
		Execute()
	return err
}

// firstRow returns the single row of an array response, or sqlconfig.ErrNotFound when it is empty.
func firstRow[T any](data []byte) (*T, error) {
	rows, err := decodeRows[T](data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sqlconfig.ErrNotFound
	}
	return rows[0], nil
}
