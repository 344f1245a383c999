package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) GetBudget(ctx context.Context, spaceID uuid.UUID) (*service.Budget, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Budget), args.Error(1)
}

func (m *mockBudgetService) SetBudget(ctx context.Context, spaceID uuid.UUID, monthlyBudget decimal.Decimal) (*service.Budget, error) {
	args := m.Called(ctx, spaceID, monthlyBudget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Budget), args.Error(1)
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, spaceID uuid.UUID) error {
	args := m.Called(ctx, spaceID)
	return args.Error(0)
}

func newTestAPI(t *testing.T, svc *mockBudgetService) humatest.TestAPI {
	t.Helper()
	response.Install(false)
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func matchAmount(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func TestHTTP_GetBudget_NotFound(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("GetBudget", mock.Anything, mock.Anything).Return(nil, &service.NotFoundError{Resource: "Budget"})

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/" + uuid.Must(uuid.NewV4()).String() + "/budget")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error":"Budget not found"`)
}

func TestHTTP_CreateBudget(t *testing.T) {
	mockSvc := new(mockBudgetService)
	spaceID := uuid.Must(uuid.NewV4())
	mockSvc.On("SetBudget", mock.Anything, spaceID, matchAmount("1500.75")).Return(&service.Budget{
		ID:            uuid.Must(uuid.NewV4()),
		SpaceID:       spaceID,
		MonthlyBudget: decimal.RequireFromString("1500.75"),
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+spaceID.String()+"/budget", map[string]any{
		"monthly_budget": 1500.75,
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body response.Envelope[Budget]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1500.75, body.Data.MonthlyBudget)
}

func TestHTTP_UpdateBudget(t *testing.T) {
	mockSvc := new(mockBudgetService)
	spaceID := uuid.Must(uuid.NewV4())
	mockSvc.On("SetBudget", mock.Anything, spaceID, matchAmount("900")).Return(&service.Budget{
		SpaceID:       spaceID,
		MonthlyBudget: decimal.NewFromInt(900),
	}, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/spaces/"+spaceID.String()+"/budget", map[string]any{
		"monthly_budget": 900,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateBudget_RejectsZero(t *testing.T) {
	mockSvc := new(mockBudgetService)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+uuid.Must(uuid.NewV4()).String()+"/budget", map[string]any{
		"monthly_budget": 0,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "SetBudget")
}

func TestHTTP_DeleteBudget(t *testing.T) {
	mockSvc := new(mockBudgetService)
	spaceID := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteBudget", mock.Anything, spaceID).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/spaces/" + spaceID.String() + "/budget")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
