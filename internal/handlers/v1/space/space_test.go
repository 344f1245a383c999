package space

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

type mockSpaceService struct {
	mock.Mock
}

func (m *mockSpaceService) CreateSpace(ctx context.Context) (uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockSpaceService) GetSpace(ctx context.Context, spaceID uuid.UUID) (*service.Space, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Space), args.Error(1)
}

func (m *mockSpaceService) DeleteSpace(ctx context.Context, spaceID uuid.UUID) error {
	args := m.Called(ctx, spaceID)
	return args.Error(0)
}

func newTestAPI(t *testing.T, svc *mockSpaceService) humatest.TestAPI {
	t.Helper()
	response.Install(false)
	_, api := humatest.New(t)
	NewCreateSpaceHandler(svc).Register(api)
	NewGetSpaceHandler(svc).Register(api)
	NewDeleteSpaceHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateSpace(t *testing.T) {
	mockSvc := new(mockSpaceService)
	spaceID := uuid.Must(uuid.NewV4())
	mockSvc.On("CreateSpace", mock.Anything).Return(spaceID, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces")

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body response.Envelope[CreatedSpace]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, spaceID.String(), body.Data.SpaceID)
	assert.Equal(t, "Space created successfully", body.Data.Message)
}

func TestHTTP_CreateSpace_StorageFailure(t *testing.T) {
	mockSvc := new(mockSpaceService)
	mockSvc.On("CreateSpace", mock.Anything).
		Return(uuid.Nil, &service.StorageError{Op: "create space", Err: errors.New("refused")})

	resp := newTestAPI(t, mockSvc).Post("/api/spaces")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error":"Internal server error"`)
}

func TestHTTP_GetSpace(t *testing.T) {
	mockSvc := new(mockSpaceService)
	spaceID := uuid.Must(uuid.NewV4())
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mockSvc.On("GetSpace", mock.Anything, spaceID).Return(&service.Space{
		ID:        uuid.Must(uuid.NewV4()),
		SpaceID:   spaceID,
		CreatedAt: created,
		UpdatedAt: created,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/" + spaceID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body response.Envelope[Space]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, spaceID.String(), body.Data.SpaceID)
	assert.Equal(t, "2024-01-02T03:04:05Z", body.Data.CreatedAt)
}

func TestHTTP_GetSpace_NotFound(t *testing.T) {
	mockSvc := new(mockSpaceService)
	mockSvc.On("GetSpace", mock.Anything, mock.Anything).Return(nil, &service.NotFoundError{Resource: "Space"})

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error":"Space not found"`)
}

func TestHTTP_GetSpace_InvalidID(t *testing.T) {
	mockSvc := new(mockSpaceService)

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetSpace")
}

func TestHTTP_DeleteSpace(t *testing.T) {
	mockSvc := new(mockSpaceService)
	spaceID := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteSpace", mock.Anything, spaceID).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/spaces/" + spaceID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}
