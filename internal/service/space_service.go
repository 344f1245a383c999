package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/storage"
)

// SpaceService handles the space registry.
type SpaceService struct {
	storage *storage.Storage
}

func NewSpaceService(store *storage.Storage) *SpaceService {
	return &SpaceService{storage: store}
}

// CreateSpace generates a fresh space identifier and persists it.
func (s *SpaceService) CreateSpace(ctx context.Context) (uuid.UUID, error) {
	spaceID, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, &StorageError{Op: "generate space id", Err: err}
	}

	row, err := s.storage.Spaces.Insert(ctx, spaceID)
	if err != nil {
		return uuid.Nil, &StorageError{Op: "create space", Err: err}
	}
	return row.SpaceID, nil
}

func (s *SpaceService) GetSpace(ctx context.Context, spaceID uuid.UUID) (*Space, error) {
	row, err := s.storage.Spaces.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, translate("get space", "Space", err)
	}
	return spaceFromStorage(row), nil
}

// SpaceExists treats every lookup failure, transport errors included, as absence.
func (s *SpaceService) SpaceExists(ctx context.Context, spaceID uuid.UUID) bool {
	_, err := s.GetSpace(ctx, spaceID)
	return err == nil
}

// DeleteSpace removes the space; the store cascades to its transactions, budget and schedules.
func (s *SpaceService) DeleteSpace(ctx context.Context, spaceID uuid.UUID) error {
	if err := s.storage.Spaces.Delete(ctx, spaceID); err != nil {
		return &StorageError{Op: "delete space", Err: err}
	}
	return nil
}
