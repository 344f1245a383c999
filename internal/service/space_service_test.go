package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

func TestCreateSpace_ReturnsFreshID(t *testing.T) {
	svc, m := newTestService(t)

	m.spaces.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spaceID uuid.UUID) (*sqlconfig.Space, error) {
			return &sqlconfig.Space{ID: uuid.Must(uuid.NewV4()), SpaceID: spaceID}, nil
		}).Times(2)

	first, err := svc.Space.CreateSpace(context.Background())
	require.NoError(t, err)
	second, err := svc.Space.CreateSpace(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first)
	assert.NotEqual(t, first, second)
}

func TestCreateSpace_StorageError(t *testing.T) {
	svc, m := newTestService(t)

	m.spaces.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, errors.New("refused"))

	id, err := svc.Space.CreateSpace(context.Background())

	var storageErr *StorageError
	assert.ErrorAs(t, err, &storageErr)
	assert.Equal(t, uuid.Nil, id)
}

func TestSpaceExists(t *testing.T) {
	svc, m := newTestService(t)

	known := uuid.Must(uuid.NewV4())
	missing := uuid.Must(uuid.NewV4())
	broken := uuid.Must(uuid.NewV4())
	m.spaces.EXPECT().FindBySpaceID(mock.Anything, known).Return(&sqlconfig.Space{SpaceID: known}, nil)
	m.spaces.EXPECT().FindBySpaceID(mock.Anything, missing).Return(nil, sqlconfig.ErrNotFound)
	m.spaces.EXPECT().FindBySpaceID(mock.Anything, broken).Return(nil, errors.New("timeout"))

	assert.True(t, svc.Space.SpaceExists(context.Background(), known))
	assert.False(t, svc.Space.SpaceExists(context.Background(), missing))
	assert.False(t, svc.Space.SpaceExists(context.Background(), broken))
}

func TestGetSpace_NotFound(t *testing.T) {
	svc, m := newTestService(t)

	m.spaces.EXPECT().FindBySpaceID(mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Space.GetSpace(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Space not found", err.Error())
}
