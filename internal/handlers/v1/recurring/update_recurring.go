package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

type UpdateRecurringBody struct {
	Name        *string  `json:"name,omitempty" minLength:"1"`
	Type        *string  `json:"type,omitempty" enum:"income,expense"`
	Amount      *float64 `json:"amount,omitempty" exclusiveMinimum:"0"`
	Category    *string  `json:"category,omitempty" minLength:"1"`
	Subcategory *string  `json:"subcategory,omitempty"`
	Description *string  `json:"description,omitempty"`
	Frequency   *string  `json:"frequency,omitempty" enum:"weekly,monthly,yearly"`
	StartDate   *string  `json:"start_date,omitempty" format:"date"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type UpdateRecurringInput struct {
	RecurringPath
	Body UpdateRecurringBody
}

type recurringUpdater interface {
	UpdateRecurringTransaction(ctx context.Context, spaceID uuid.UUID, id string, patch service.RecurringTransactionPatch) (*service.RecurringTransaction, error)
}

// UpdateRecurringHandler handles PUT /api/spaces/{spaceId}/recurring-transactions/{id}.
type UpdateRecurringHandler struct {
	RecurringService recurringUpdater
}

func NewUpdateRecurringHandler(svc recurringUpdater) *UpdateRecurringHandler {
	return &UpdateRecurringHandler{RecurringService: svc}
}

func (h *UpdateRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-recurring-transaction",
		Method:      http.MethodPut,
		Path:        "/api/spaces/{spaceId}/recurring-transactions/{id}",
		Summary:     "Update recurring transaction",
		Description: "Changing frequency or start_date recomputes next_due_date.",
		Tags:        []string{"Recurring transactions"},
	}, h.handle)
}

func parseUpdateRecurringInput(input *UpdateRecurringInput) (uuid.UUID, string, service.RecurringTransactionPatch, error) {
	var patch service.RecurringTransactionPatch

	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return uuid.Nil, "", patch, err
	}
	id, err := service.ParseScheduleID(input.ID)
	if err != nil {
		return uuid.Nil, "", patch, err
	}

	body := input.Body
	if body.Type != nil {
		txType, err := service.ParseTransactionType(*body.Type)
		if err != nil {
			return uuid.Nil, "", patch, err
		}
		patch.Type = &txType
	}
	if body.Amount != nil {
		amount := decimal.NewFromFloat(*body.Amount)
		patch.Amount = &amount
	}
	if body.Frequency != nil {
		frequency, err := service.ParseFrequency(*body.Frequency)
		if err != nil {
			return uuid.Nil, "", patch, err
		}
		patch.Frequency = &frequency
	}
	if body.StartDate != nil {
		d, err := service.ParseDate("start_date", *body.StartDate)
		if err != nil {
			return uuid.Nil, "", patch, err
		}
		patch.StartDate = &d
	}
	patch.Name = body.Name
	patch.Category = body.Category
	patch.Subcategory = body.Subcategory
	patch.Description = body.Description
	patch.IsActive = body.IsActive

	return spaceID, id, patch, nil
}

func (h *UpdateRecurringHandler) handle(ctx context.Context, input *UpdateRecurringInput) (*RecurringOutput, error) {
	spaceID, id, patch, err := parseUpdateRecurringInput(input)
	if err != nil {
		return nil, response.FromError(err)
	}

	rt, err := h.RecurringService.UpdateRecurringTransaction(ctx, spaceID, id, patch)
	if err != nil {
		return nil, response.FromError(err)
	}
	return &RecurringOutput{Body: response.OK(fromService(*rt))}, nil
}
