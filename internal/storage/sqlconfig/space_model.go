package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Space is the tenant row every other record hangs off.
type Space struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SpaceID   uuid.UUID `db:"space_id" json:"space_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ISpaceTable defines the storage operations for spaces.
//
//go:generate mockery --name ISpaceTable --output mock_ISpaceTable.go
type ISpaceTable interface {
	Insert(ctx context.Context, spaceID uuid.UUID) (*Space, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) (*Space, error)
	Delete(ctx context.Context, spaceID uuid.UUID) error
}
