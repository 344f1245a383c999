package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var spaceColumns = []any{"id", "space_id", "created_at", "updated_at"}

// SpacesTable provides access to the spaces table.
type SpacesTable struct {
	exec bob.Executor
}

var _ ISpaceTable = (*SpacesTable)(nil)

func NewSpacesTable(db *sql.DB) SpacesTable {
	return SpacesTable{exec: bob.NewDB(db)}
}

// Insert stores a new space under the given client-facing key.
func (t *SpacesTable) Insert(ctx context.Context, spaceID uuid.UUID) (*Space, error) {
	q := psql.Insert(
		im.Into("spaces", "space_id"),
		im.Values(psql.Arg(spaceID)),
		im.Returning(spaceColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Space]())
}

func (t *SpacesTable) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) (*Space, error) {
	q := psql.Select(
		sm.Columns(spaceColumns...),
		sm.From("spaces"),
		sm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Space]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}

// Delete removes the space. Owned rows go with it through ON DELETE CASCADE.
func (t *SpacesTable) Delete(ctx context.Context, spaceID uuid.UUID) error {
	q := psql.Delete(
		dm.From("spaces"),
		dm.Where(psql.Quote("space_id").EQ(psql.Arg(spaceID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
