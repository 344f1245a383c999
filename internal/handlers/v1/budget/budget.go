package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

// Budget is the API response model for a space's monthly budget.
type Budget struct {
	ID            string  `json:"id"`
	SpaceID       string  `json:"space_id"`
	MonthlyBudget float64 `json:"monthly_budget"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func fromService(b *service.Budget) Budget {
	return Budget{
		ID:            b.ID.String(),
		SpaceID:       b.SpaceID.String(),
		MonthlyBudget: b.MonthlyBudget.InexactFloat64(),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

type SpacePath struct {
	SpaceID string `path:"spaceId" format:"uuid" doc:"Space UUID"`
}

type BudgetBody struct {
	MonthlyBudget float64 `json:"monthly_budget" exclusiveMinimum:"0" doc:"Positive monthly amount"`
}

type SetBudgetInput struct {
	SpacePath
	Body BudgetBody
}

type BudgetOutput struct {
	Body response.Envelope[Budget]
}

type budgetService interface {
	GetBudget(ctx context.Context, spaceID uuid.UUID) (*service.Budget, error)
	SetBudget(ctx context.Context, spaceID uuid.UUID, monthlyBudget decimal.Decimal) (*service.Budget, error)
	DeleteBudget(ctx context.Context, spaceID uuid.UUID) error
}

// Handler serves the budget singleton of a space. POST and PUT share the
// upsert and differ only in their success status.
type Handler struct {
	BudgetService budgetService
}

func NewHandler(svc budgetService) *Handler {
	return &Handler{BudgetService: svc}
}

func (h *Handler) Register(api huma.API) {
	path := "/api/spaces/{spaceId}/budget"

	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        path,
		Summary:     "Get budget",
		Tags:        []string{"Budget"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          path,
		Summary:       "Create or replace budget",
		Tags:          []string{"Budget"},
		DefaultStatus: http.StatusCreated,
	}, h.set)

	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        path,
		Summary:     "Update budget",
		Tags:        []string{"Budget"},
	}, h.set)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          path,
		Summary:       "Delete budget",
		Tags:          []string{"Budget"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) get(ctx context.Context, input *SpacePath) (*BudgetOutput, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}
	b, err := h.BudgetService.GetBudget(ctx, spaceID)
	if err != nil {
		return nil, response.FromError(err)
	}
	return &BudgetOutput{Body: response.OK(fromService(b))}, nil
}

func (h *Handler) set(ctx context.Context, input *SetBudgetInput) (*BudgetOutput, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}
	b, err := h.BudgetService.SetBudget(ctx, spaceID, decimal.NewFromFloat(input.Body.MonthlyBudget))
	if err != nil {
		return nil, response.FromError(err)
	}
	return &BudgetOutput{Body: response.OK(fromService(b))}, nil
}

func (h *Handler) delete(ctx context.Context, input *SpacePath) (*struct{}, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}
	if err := h.BudgetService.DeleteBudget(ctx, spaceID); err != nil {
		return nil, response.FromError(err)
	}
	return nil, nil
}
